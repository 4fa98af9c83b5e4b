// Package escalate walks a task through its tier ladder: invoke, evaluate,
// then stop or escalate, bounded by the spec's escalation limit.
package escalate

import (
	"context"

	"github.com/strataai/strata/internal/checker"
	"github.com/strataai/strata/internal/classify"
	"github.com/strataai/strata/pkg/models"
)

// State is the phase of a single request's escalation walk.
type State int

const (
	// StatePending means a tier invocation is in flight or about to start.
	StatePending State = iota
	// StateEvaluated means the current tier's output has been scored.
	StateEvaluated
	// StateEscalating means the next tier in the escalation order was selected.
	StateEscalating
	// StateAccepted is terminal: the output was judged good enough.
	StateAccepted
	// StateExhausted is terminal: escalation was needed but no attempt or
	// tier remained; the last output is returned unvetted.
	StateExhausted
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateEvaluated:
		return "evaluated"
	case StateEscalating:
		return "escalating"
	case StateAccepted:
		return "accepted"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// InvokeFunc is the external inference executor: model identifier, prompt and
// output token cap in, text out. Failures are the executor's own; the
// controller propagates them unchanged and never retries.
type InvokeFunc func(ctx context.Context, modelID, prompt string, maxOutputTokens int) (string, error)

// Attempt records one tier invocation and its verdict.
type Attempt struct {
	Tier       models.Tier             `json:"tier"`
	Text       string                  `json:"text"`
	Evaluation models.EvaluationResult `json:"evaluation"`
}

// Result is the outcome of a full escalation walk. Attempts counts tier
// invocations, so it is at most 1 + max_escalations. Accepted is false when
// the walk exhausted its options and the final text is not fully vetted.
type Result struct {
	FinalText  string                  `json:"final_text"`
	TierUsed   models.Tier             `json:"tier_used"`
	Attempts   int                     `json:"attempts"`
	Evaluation models.EvaluationResult `json:"evaluation"`
	Accepted   bool                    `json:"accepted"`
	History    []Attempt               `json:"history,omitempty"`

	// FinalState is the terminal state the walk reached: StateAccepted or
	// StateExhausted.
	FinalState State `json:"-"`
}

// Controller drives the escalation state machine. It holds no per-request
// state; every Run call builds its own transient walk and discards it on
// termination, so a single Controller serves concurrent requests.
type Controller struct {
	classifier *classify.Classifier
	checker    *checker.Checker
	tierModels map[models.Tier]string
}

// NewController creates a Controller. tierModels maps each tier to its
// configured model identifier; a missing entry falls back to the tier name.
func NewController(classifier *classify.Classifier, chk *checker.Checker, tierModels map[models.Tier]string) *Controller {
	tm := make(map[models.Tier]string, len(tierModels))
	for tier, id := range tierModels {
		tm[tier] = id
	}
	return &Controller{
		classifier: classifier,
		checker:    chk,
		tierModels: tm,
	}
}

// ModelFor returns the configured model identifier for a tier.
func (c *Controller) ModelFor(tier models.Tier) string {
	if id, ok := c.tierModels[tier]; ok && id != "" {
		return id
	}
	return string(tier)
}

// Run executes the full Pending -> ... -> terminal walk for one request.
// The primary tier is invoked first; after each evaluation the controller
// either accepts, escalates to the next tier in the spec's escalation order
// (in listed sequence, never skipping), or gives up. Tier N+1 is never
// invoked before tier N's output is evaluated. Invoke errors are returned
// unchanged with no partial state left behind.
func (c *Controller) Run(ctx context.Context, spec models.AgentSpec, task string, invoke InvokeFunc) (*Result, error) {
	isHard := c.classifier.IsHard(task)

	walk := struct {
		tier           models.Tier
		nextEscalation int
		attemptsUsed   int
		history        []Attempt
	}{
		tier: spec.Routing.Primary,
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Pending: hand control to the external executor.
		text, err := invoke(ctx, c.ModelFor(walk.tier), task, spec.Limits.MaxOutputTokens)
		if err != nil {
			return nil, err
		}

		// Evaluated: score the output.
		eval := c.checker.EvaluateSingle(text, isHard)
		walk.history = append(walk.history, Attempt{Tier: walk.tier, Text: text, Evaluation: eval})

		if !eval.NeedsEscalation {
			return &Result{
				FinalText:  text,
				TierUsed:   walk.tier,
				Attempts:   len(walk.history),
				Evaluation: eval,
				Accepted:   true,
				History:    walk.history,
				FinalState: StateAccepted,
			}, nil
		}

		// Escalation needed: allowed only while attempts remain and the
		// escalation order has an untried entry. The order may repeat the
		// primary tier; it is followed as listed.
		if walk.attemptsUsed >= spec.Limits.MaxEscalations ||
			walk.nextEscalation >= len(spec.Routing.EscalationOrder) {
			return &Result{
				FinalText:  text,
				TierUsed:   walk.tier,
				Attempts:   len(walk.history),
				Evaluation: eval,
				Accepted:   false,
				History:    walk.history,
				FinalState: StateExhausted,
			}, nil
		}

		// Escalating: select the next tier and go back to Pending.
		walk.tier = spec.Routing.EscalationOrder[walk.nextEscalation]
		walk.nextEscalation++
		walk.attemptsUsed++
	}
}
