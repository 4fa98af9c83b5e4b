// Package classify decides whether a task needs the harder inference tiers.
package classify

import (
	"strings"

	"github.com/strataai/strata/internal/policy"
	"github.com/strataai/strata/pkg/models"
)

// Classifier flags hard tasks by keyword containment. Matching is exact
// case-insensitive substring containment; no tokenization, no fuzzy matching.
type Classifier struct {
	hardKeywords []string
}

// New creates a Classifier with the given hard-task keywords.
func New(hardKeywords []string) *Classifier {
	return &Classifier{hardKeywords: append([]string{}, hardKeywords...)}
}

// NewDefault creates a Classifier with the built-in policy keywords.
func NewDefault() *Classifier {
	return New(policy.DefaultHardKeywords)
}

// IsHard reports whether the task text contains any hard-task keyword.
// Empty text is never hard.
func (c *Classifier) IsHard(taskText string) bool {
	lower := strings.ToLower(taskText)
	for _, kw := range c.hardKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// ClassifyRequest derives the task text from a request and classifies it.
func (c *Classifier) ClassifyRequest(req models.TaskRequest) bool {
	return c.IsHard(req.TaskText())
}

// MatchedKeyword returns the first hard keyword found in the task text, or
// the empty string when none match. Useful for explaining a routing decision.
func (c *Classifier) MatchedKeyword(taskText string) string {
	lower := strings.ToLower(taskText)
	for _, kw := range c.hardKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return kw
		}
	}
	return ""
}
