package normalization

import (
	"regexp"
	"testing"
)

var identifierRE = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: "unknown"},
		{name: "punctuation", in: "Flu-Like Symptoms!!", want: "flu_like_symptoms"},
		{name: "already clean", in: "disease_name", want: "disease_name"},
		{name: "underscore runs", in: "__a___b__", want: "a_b"},
		{name: "digits kept", in: "COVID 19", want: "covid_19"},
		{name: "unicode replaced", in: "Maladie à virus", want: "maladie_virus"},
		{name: "only symbols", in: "!!!", want: "unknown"},
		{name: "whitespace only", in: "   ", want: "unknown"},
		{name: "label", in: "LifestyleFactor", want: "lifestylefactor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Fatalf("Sanitize(%q): want=%q got=%q", tt.in, tt.want, got)
			}
		})
	}
}

func TestSanitizeIsTotal(t *testing.T) {
	inputs := []string{"", " ", "a", "A-B", "\x00\xff", "日本語", "x__", "Über-Grippe 2024", "\t\n"}
	for _, in := range inputs {
		got := Sanitize(in)
		if got == "" {
			t.Fatalf("Sanitize(%q) returned empty string", in)
		}
		if !identifierRE.MatchString(got) {
			t.Fatalf("Sanitize(%q)=%q does not match %s", in, got, identifierRE)
		}
		if got[0] == '_' || got[len(got)-1] == '_' {
			t.Fatalf("Sanitize(%q)=%q has outer underscore", in, got)
		}
		if Sanitize(got) != got {
			t.Fatalf("Sanitize not idempotent on %q", got)
		}
	}
}

func TestTrimNameKeepsCase(t *testing.T) {
	if got := TrimName("  Common Cold \n"); got != "Common Cold" {
		t.Fatalf("TrimName: want=%q got=%q", "Common Cold", got)
	}
	if got := TrimName("   "); got != "" {
		t.Fatalf("TrimName blank: want=%q got=%q", "", got)
	}
}
