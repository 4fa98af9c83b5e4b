// Package tui implements the interactive routing console. Type a task and
// watch the classification, routing decision and spec update live; submit it
// to pin the decision into the session history.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/strataai/strata/internal/classify"
	"github.com/strataai/strata/internal/plan"
	"github.com/strataai/strata/internal/policy"
	"github.com/strataai/strata/pkg/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	hardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true)

	easyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// guards in cycling order for ctrl+b.
var guards = []models.BudgetGuard{models.GuardEconomy, models.GuardBalanced, models.GuardPremium}

// HistoryEntry is one submitted task and its routing outcome.
type HistoryEntry struct {
	Task    string
	Guard   models.BudgetGuard
	Hard    bool
	Primary models.Tier
	Order   []models.Tier
}

// App is the interactive routing console model.
type App struct {
	input      textinput.Model
	classifier *classify.Classifier
	builder    *plan.Builder
	guardIdx   int
	history    []HistoryEntry
	width      int
	quitting   bool

	policies   func() *policy.Policy
	lastPolicy *policy.Policy
}

// NewApp creates the console with the given classifier and spec builder.
func NewApp(classifier *classify.Classifier, builder *plan.Builder) *App {
	ti := textinput.New()
	ti.Placeholder = "Describe a task and press Enter..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	return &App{
		input:      ti,
		classifier: classifier,
		builder:    builder,
		guardIdx:   1, // balanced
		width:      80,
	}
}

// WithPolicySource makes the console re-read the policy before each render,
// so a watched policy file takes effect mid-session. The source should be
// cheap; it is called once per update.
func (a *App) WithPolicySource(source func() *policy.Policy) *App {
	a.policies = source
	return a
}

// refresh swaps in a new classifier and builder when the policy changed.
func (a *App) refresh() {
	if a.policies == nil {
		return
	}
	p := a.policies()
	if p == nil || p == a.lastPolicy {
		return
	}
	a.lastPolicy = p
	a.classifier = classify.New(p.HardKeywords)
	a.builder = plan.NewBuilder(a.classifier)
}

// Guard returns the currently selected budget guard.
func (a *App) Guard() models.BudgetGuard {
	return guards[a.guardIdx]
}

// History returns the submitted entries, oldest first.
func (a *App) History() []HistoryEntry {
	return a.history
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	a.refresh()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.input.Width = msg.Width - 6
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			a.quitting = true
			return a, tea.Quit

		case "ctrl+b":
			a.guardIdx = (a.guardIdx + 1) % len(guards)
			return a, nil

		case "enter":
			if text := strings.TrimSpace(a.input.Value()); text != "" {
				a.submit(text)
				a.input.Reset()
			}
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit pins the current decision into the history.
func (a *App) submit(task string) {
	spec := a.buildSpec(task)
	a.history = append(a.history, HistoryEntry{
		Task:    task,
		Guard:   spec.Routing.BudgetGuard,
		Hard:    a.classifier.IsHard(task),
		Primary: spec.Routing.Primary,
		Order:   spec.Routing.EscalationOrder,
	})
}

// buildSpec builds the spec for the typed task under the selected guard.
func (a *App) buildSpec(task string) models.AgentSpec {
	return a.builder.BuildAgentSpec(models.TaskRequest{
		Description: task,
		BudgetGuard: string(a.Guard()),
	})
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("strata routing console"))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Width(a.width - 2).Render(a.input.View()))
	b.WriteString("\n")
	b.WriteString(a.decisionView())
	b.WriteString("\n")
	b.WriteString(a.historyView())
	b.WriteString(helpStyle.Render("enter submit · ctrl+b cycle guard · esc quit"))
	b.WriteString("\n")

	return b.String()
}

// decisionView renders the live decision for the text typed so far.
func (a *App) decisionView() string {
	task := strings.TrimSpace(a.input.Value())
	if task == "" {
		return labelStyle.Render(fmt.Sprintf("guard: %s · start typing to see the routing decision", a.Guard())) + "\n"
	}

	spec := a.buildSpec(task)
	hard := a.classifier.IsHard(task)

	difficulty := easyStyle.Render("standard")
	if hard {
		kw := a.classifier.MatchedKeyword(task)
		difficulty = hardStyle.Render("hard") + labelStyle.Render(" (keyword: "+kw+")")
	}

	order := "none"
	if len(spec.Routing.EscalationOrder) > 0 {
		parts := make([]string, len(spec.Routing.EscalationOrder))
		for i, tier := range spec.Routing.EscalationOrder {
			parts[i] = string(tier)
		}
		order = strings.Join(parts, " -> ")
	}

	lines := []string{
		fmt.Sprintf("%s %s", labelStyle.Render("difficulty:"), difficulty),
		fmt.Sprintf("%s %s", labelStyle.Render("guard:"), string(spec.Routing.BudgetGuard)),
		fmt.Sprintf("%s %s", labelStyle.Render("primary:"), string(spec.Routing.Primary)),
		fmt.Sprintf("%s %s", labelStyle.Render("escalation:"), order),
		fmt.Sprintf("%s %d", labelStyle.Render("max output tokens:"), spec.Limits.MaxOutputTokens),
	}
	return strings.Join(lines, "\n") + "\n"
}

// historyView renders the submitted decisions, most recent last.
func (a *App) historyView() string {
	if len(a.history) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("submitted:"))
	b.WriteString("\n")

	start := 0
	if len(a.history) > 5 {
		start = len(a.history) - 5
	}
	for _, e := range a.history[start:] {
		marker := "·"
		if e.Hard {
			marker = "!"
		}
		b.WriteString(fmt.Sprintf("  %s %s [%s] -> %s\n", marker, truncate(e.Task, 48), e.Guard, e.Primary))
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
