// Package llm provides inference-executor adapters. The decision core never
// calls a model itself; these invokers are the external collaborators that
// the escalation controller drives, one invocation per attempted tier.
package llm

import (
	"context"
	"fmt"

	"github.com/strataai/strata/pkg/models"
)

// SystemPrompt is sent with every invocation.
const SystemPrompt = "You are a helpful, safe assistant."

// Temperature keeps outputs stable across escalation attempts.
const Temperature = 0.2

// Invoker executes a single inference call. Implementations do not retry;
// a failure surfaces to the caller unchanged.
type Invoker interface {
	Invoke(ctx context.Context, modelID, prompt string, maxOutputTokens int) (string, error)
}

// BuildPrompt renders the user prompt for a task under its spec: the task
// text plus tone and target instructions.
func BuildPrompt(task string, spec models.AgentSpec) string {
	return fmt.Sprintf("Respond in a %s tone, writing for the %s surface.\n\n%s",
		spec.Tone, spec.Target, task)
}
