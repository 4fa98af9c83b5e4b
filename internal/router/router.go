// Package router maps task difficulty and budget policy to inference tiers.
package router

import "github.com/strataai/strata/pkg/models"

// routeKey indexes the routing table by budget guard and difficulty.
type routeKey struct {
	guard models.BudgetGuard
	hard  bool
}

type routeRow struct {
	primary    models.Tier
	escalation []models.Tier
}

// routeTable is the authoritative routing decision table. Cheaper guards
// favor low tiers but keep an escalation path; premium front-loads quality.
// Two rows are known oddities and preserved as observed product behavior:
// economy/hard repeats the primary tier at the head of the escalation order,
// and premium/hard has no escalation path at all (tier C is the ceiling).
var routeTable = map[routeKey]routeRow{
	{models.GuardEconomy, false}:  {models.TierA, []models.Tier{models.TierB}},
	{models.GuardEconomy, true}:   {models.TierB, []models.Tier{models.TierB, models.TierC}},
	{models.GuardBalanced, false}: {models.TierA, []models.Tier{models.TierB}},
	{models.GuardBalanced, true}:  {models.TierB, []models.Tier{models.TierC}},
	{models.GuardPremium, false}:  {models.TierB, []models.Tier{models.TierC}},
	{models.GuardPremium, true}:   {models.TierC, []models.Tier{}},
}

// tokenLimits maps output targets to token caps. Unknown targets fall
// through to the default.
var tokenLimits = map[string]int{
	"blog":     1200,
	"longform": 1200,
	"code":     800,
	"analysis": 800,
}

// defaultTokenLimit applies to any target not in the table.
const defaultTokenLimit = 400

// Route returns the routing decision for a task of the given difficulty
// under the given budget guard. Unknown guards are routed as balanced.
func Route(isHard bool, guard models.BudgetGuard) models.RoutingDecision {
	if !guard.Valid() {
		guard = models.GuardBalanced
	}

	row := routeTable[routeKey{guard, isHard}]
	return models.RoutingDecision{
		Primary:         row.primary,
		EscalationOrder: append([]models.Tier{}, row.escalation...),
		BudgetGuard:     guard,
	}
}

// TokenLimitForTarget returns the output token cap for a target surface.
// Unrecognized targets get the 400-token default.
func TokenLimitForTarget(target string) int {
	if limit, ok := tokenLimits[target]; ok {
		return limit
	}
	return defaultTokenLimit
}
