package models

import "strings"

// TaskRequest is an inbound task as supplied by the submission surface.
// All fields are optional; the spec builder applies per-field defaults.
// A request is immutable once classified.
type TaskRequest struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tone        string   `json:"tone,omitempty"`
	Target      string   `json:"target,omitempty"`
	BudgetGuard string   `json:"budget_guard,omitempty"`
	Needs       []string `json:"needs,omitempty"`
}

// TaskText derives the text used for difficulty classification: description,
// category and name joined with single spaces, empty fields skipped.
func (r TaskRequest) TaskText() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{r.Description, r.Category, r.Name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// HasNeed reports whether the request lists the given capability in needs.
func (r TaskRequest) HasNeed(need string) bool {
	for _, n := range r.Needs {
		if n == need {
			return true
		}
	}
	return false
}
