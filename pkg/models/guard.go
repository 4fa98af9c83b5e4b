package models

import "strings"

// BudgetGuard controls how aggressively the router prefers cheap tiers.
type BudgetGuard string

const (
	// GuardEconomy favors the cheapest viable tier.
	GuardEconomy BudgetGuard = "economy"
	// GuardBalanced is the default cost/quality trade-off.
	GuardBalanced BudgetGuard = "balanced"
	// GuardPremium front-loads quality by starting at higher tiers.
	GuardPremium BudgetGuard = "premium"
)

// Valid returns true if the guard is a known value.
func (g BudgetGuard) Valid() bool {
	switch g {
	case GuardEconomy, GuardBalanced, GuardPremium:
		return true
	default:
		return false
	}
}

// ParseBudgetGuard maps a request string to a BudgetGuard. Matching is
// case-insensitive; anything unrecognized falls back to balanced. This is a
// deliberate default-on-unknown policy, not an error.
func ParseBudgetGuard(s string) BudgetGuard {
	switch BudgetGuard(strings.ToLower(strings.TrimSpace(s))) {
	case GuardEconomy:
		return GuardEconomy
	case GuardPremium:
		return GuardPremium
	default:
		return GuardBalanced
	}
}
