package reference_test

import (
	"testing"

	"github-task-bridge/internal/model"
	"github-task-bridge/internal/reference"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    model.Reference
		wantOK  bool
		wantKey string
	}{
		{
			name:    "plain issue number",
			text:    "Update README to fix #1",
			want:    model.Reference{Source: model.ReferenceExternal, Number: 1},
			wantOK:  true,
			wantKey: "1",
		},
		{
			name:    "internal ticket with dash",
			text:    "Implement login screen #K-42",
			want:    model.Reference{Source: model.ReferenceInternal, Number: 42},
			wantOK:  true,
			wantKey: "K-42",
		},
		{
			name:    "internal ticket without dash",
			text:    "hotfix #K7",
			want:    model.Reference{Source: model.ReferenceInternal, Number: 7},
			wantOK:  true,
			wantKey: "K-7",
		},
		{
			name:    "internal ticket lowercase",
			text:    "see #k-15 for details",
			want:    model.Reference{Source: model.ReferenceInternal, Number: 15},
			wantOK:  true,
			wantKey: "K-15",
		},
		{
			name:    "internal pattern wins over external",
			text:    "closes #3, relates to #K-9",
			want:    model.Reference{Source: model.ReferenceInternal, Number: 9},
			wantOK:  true,
			wantKey: "K-9",
		},
		{
			name:   "no reference",
			text:   "Update README",
			wantOK: false,
		},
		{
			name:   "hash without digits",
			text:   "channel #general",
			wantOK: false,
		},
		{
			name:   "empty text",
			text:   "",
			wantOK: false,
		},
		{
			name:    "number inside sentence",
			text:    "Merge branch 'main', refs #123 done",
			want:    model.Reference{Source: model.ReferenceExternal, Number: 123},
			wantOK:  true,
			wantKey: "123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := reference.Resolve(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
			if key := got.LookupKey(); key != tt.wantKey {
				t.Errorf("LookupKey() = %q, want %q", key, tt.wantKey)
			}
		})
	}
}

func TestResolveNeverMisclassifiesInternal(t *testing.T) {
	// "#K7" must never be read as external issue 7.
	got, ok := reference.Resolve("#K7")
	if !ok {
		t.Fatal("expected a reference")
	}
	if got.Source != model.ReferenceInternal {
		t.Errorf("source = %s, want %s", got.Source, model.ReferenceInternal)
	}
}
