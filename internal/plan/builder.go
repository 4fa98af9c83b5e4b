// Package plan composes classification, routing and static policy constants
// into the execution configuration handed to the inference executor.
package plan

import (
	"github.com/strataai/strata/internal/classify"
	"github.com/strataai/strata/internal/router"
	"github.com/strataai/strata/pkg/models"
)

// Static policy constants applied to every spec.
const (
	// MaxEscalations caps escalation attempts per request.
	MaxEscalations = 1
	// EthicsProfile is the guardrail profile version in force.
	EthicsProfile = "v1.0"
	// AvgInputTokens is the costing assumption for prompt size.
	AvgInputTokens = 350
)

// Per-field request defaults.
const (
	// DefaultTone applies when the request names no tone.
	DefaultTone = "professional"
	// DefaultTarget applies when the request names no target surface.
	DefaultTarget = "web"
)

// Builder builds agent specs. Pure composition: no side effects, no I/O.
type Builder struct {
	classifier *classify.Classifier
}

// NewBuilder creates a Builder using the given classifier.
func NewBuilder(classifier *classify.Classifier) *Builder {
	return &Builder{classifier: classifier}
}

// BuildAgentSpec constructs the full, immutable configuration for a task:
// classifies the derived task text, routes it under the request's budget
// guard, computes the token limit for the target and merges in the static
// guardrail and costing constants. A resubmitted task gets a fresh spec.
func (b *Builder) BuildAgentSpec(req models.TaskRequest) models.AgentSpec {
	isHard := b.classifier.IsHard(req.TaskText())
	guard := models.ParseBudgetGuard(req.BudgetGuard)
	routing := router.Route(isHard, guard)

	target := req.Target
	if target == "" {
		target = DefaultTarget
	}
	tone := req.Tone
	if tone == "" {
		tone = DefaultTone
	}

	maxOut := router.TokenLimitForTarget(target)

	return models.AgentSpec{
		Routing: routing,
		Tone:    tone,
		Target:  target,
		Tools: models.Tools{
			WebSearch: req.HasNeed("web_search"),
			RAG:       req.HasNeed("rag"),
			CodeTools: req.HasNeed("code_tools"),
		},
		Limits: models.Limits{
			MaxOutputTokens: maxOut,
			MaxEscalations:  MaxEscalations,
		},
		Guardrails: models.Guardrails{
			EthicsProfile: EthicsProfile,
			PIIRedaction:  true,
		},
		CostingAssumptions: models.CostingAssumptions{
			AvgInputTokens:  AvgInputTokens,
			AvgOutputTokens: maxOut,
		},
	}
}
