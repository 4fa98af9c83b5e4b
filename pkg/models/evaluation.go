package models

// EvaluationResult is the verdict on a single produced output.
// Refusal is a diagnostic signal only; it never feeds the escalation decision.
type EvaluationResult struct {
	NeedsEscalation bool    `json:"needs_escalation"`
	Confidence      float64 `json:"confidence"`
	Danger          bool    `json:"danger"`
	Refusal         bool    `json:"refusal"`
}

// BatchEvaluationResult aggregates evaluation over a named batch of outputs.
// TrustScore is the mean tone score clamped to [0.2, 0.95].
type BatchEvaluationResult struct {
	Passed     bool               `json:"passed"`
	TrustScore float64            `json:"trust_score"`
	ToneScores map[string]float64 `json:"tone_scores"`
}
