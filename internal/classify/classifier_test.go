package classify

import (
	"testing"

	"github.com/strataai/strata/pkg/models"
)

func TestIsHard(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"write code keyword", "write code to parse a log file", true},
		{"coding keyword", "help with coding a widget", true},
		{"legal keyword", "review this legal contract", true},
		{"security keyword", "audit security settings", true},
		{"encryption keyword", "encryption key rotation policy", true},
		{"multi-step keyword", "a multi-step onboarding flow", true},
		{"mixed case", "DEBUG the pipeline", true},
		{"keyword inside word", "architectures of ancient Rome", true},
		{"simple summary", "summarize this email", false},
		{"empty text", "", false},
		{"unrelated text", "draft a birthday greeting", false},
	}

	c := NewDefault()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsHard(tt.text); got != tt.want {
				t.Errorf("IsHard(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsHardAllDefaultKeywords(t *testing.T) {
	c := NewDefault()
	keywords := []string{
		"multi-step", "write code", "coding", "legal", "security",
		"financial", "long plan", "complex", "debug", "architecture",
		"compliance", "privacy", "encryption", "risk",
	}
	for _, kw := range keywords {
		if !c.IsHard("please handle " + kw + " for me") {
			t.Errorf("IsHard() = false for keyword %q", kw)
		}
	}
}

func TestClassifyRequestUsesAllTextFields(t *testing.T) {
	c := NewDefault()

	// Keyword appears only in the category field.
	req := models.TaskRequest{Description: "help a customer", Category: "legal"}
	if !c.ClassifyRequest(req) {
		t.Error("ClassifyRequest() = false when category holds a hard keyword")
	}

	// Keyword appears only in the name field.
	req = models.TaskRequest{Description: "help a customer", Name: "debug buddy"}
	if !c.ClassifyRequest(req) {
		t.Error("ClassifyRequest() = false when name holds a hard keyword")
	}

	if c.ClassifyRequest(models.TaskRequest{}) {
		t.Error("ClassifyRequest() = true for empty request")
	}
}

func TestMatchedKeyword(t *testing.T) {
	c := New([]string{"legal", "debug"})
	if got := c.MatchedKeyword("please debug this"); got != "debug" {
		t.Errorf("MatchedKeyword() = %q, want %q", got, "debug")
	}
	if got := c.MatchedKeyword("hello there"); got != "" {
		t.Errorf("MatchedKeyword() = %q, want empty", got)
	}
}

func TestInjectedKeywords(t *testing.T) {
	c := New([]string{"banana"})
	if !c.IsHard("peel the banana") {
		t.Error("IsHard() = false for injected keyword")
	}
	if c.IsHard("write code") {
		t.Error("IsHard() = true for keyword not in injected list")
	}
}
