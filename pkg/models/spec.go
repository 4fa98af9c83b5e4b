package models

// RoutingDecision is the router's verdict for a single task: which tier to
// invoke first and which tiers remain available for escalation, in order.
// The escalation order never contains a tier ranked below the primary; it may
// legitimately repeat the primary (see the economy/hard routing row).
type RoutingDecision struct {
	Primary         Tier        `json:"primary" yaml:"primary"`
	EscalationOrder []Tier      `json:"escalation_order" yaml:"escalation_order"`
	BudgetGuard     BudgetGuard `json:"budget_guard" yaml:"budget_guard"`
}

// Tools records which optional capabilities the task asked for.
type Tools struct {
	WebSearch bool `json:"web_search" yaml:"web_search"`
	RAG       bool `json:"rag" yaml:"rag"`
	CodeTools bool `json:"code_tools" yaml:"code_tools"`
}

// Limits holds per-task execution limits.
type Limits struct {
	MaxOutputTokens int `json:"max_output_tokens" yaml:"max_output_tokens"`
	MaxEscalations  int `json:"max_escalations" yaml:"max_escalations"`
}

// Guardrails holds the static safety configuration applied to every task.
type Guardrails struct {
	EthicsProfile string `json:"ethics_profile" yaml:"ethics_profile"`
	PIIRedaction  bool   `json:"pii_redaction" yaml:"pii_redaction"`
}

// CostingAssumptions holds the token estimates used for billing quotes.
type CostingAssumptions struct {
	AvgInputTokens  int `json:"avg_input_tokens" yaml:"avg_input_tokens"`
	AvgOutputTokens int `json:"avg_output_tokens" yaml:"avg_output_tokens"`
}

// AgentSpec is the full execution configuration handed to the inference
// executor. It is created once per task and never mutated; resubmitting a
// task produces a fresh spec.
type AgentSpec struct {
	Routing            RoutingDecision    `json:"routing" yaml:"routing"`
	Tone               string             `json:"tone" yaml:"tone"`
	Target             string             `json:"target" yaml:"target"`
	Tools              Tools              `json:"tools" yaml:"tools"`
	Limits             Limits             `json:"limits" yaml:"limits"`
	Guardrails         Guardrails         `json:"guardrails" yaml:"guardrails"`
	CostingAssumptions CostingAssumptions `json:"costing_assumptions" yaml:"costing_assumptions"`
}
