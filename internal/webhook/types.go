package webhook

// SecurityConfig holds webhook endpoint security settings.
type SecurityConfig struct {
	Token           string   // per-installation token embedded in the webhook URL
	Secret          string   // shared secret for signature verification (optional)
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // max requests per minute per source
}
