package translator

import "encoding/json"

// Config tunes provider-facing texts.
type Config struct {
	// ProviderName is the display name used in generated comment footers.
	ProviderName string
	// IssueTitleWithNumber prefixes created task titles with the provider
	// issue number, e.g. "(#12) Fix login".
	IssueTitleWithNumber bool
}

// TranslateInput is one webhook delivery. ProjectID is bound by the caller
// from the webhook URL and is never inferred from the payload.
type TranslateInput struct {
	ProjectID int64
	Event     string // event family from the provider header
	Payload   json.RawMessage
}

// TranslateOutput reports what the delivery produced.
type TranslateOutput struct {
	Handled bool // at least one domain event was emitted
	Emitted int
}
