package models

import "testing"

func TestParseBudgetGuard(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  BudgetGuard
	}{
		{"economy", "economy", GuardEconomy},
		{"balanced", "balanced", GuardBalanced},
		{"premium", "premium", GuardPremium},
		{"economy upper", "ECONOMY", GuardEconomy},
		{"premium mixed case", "PreMium", GuardPremium},
		{"surrounding whitespace", "  economy  ", GuardEconomy},
		{"empty falls back to balanced", "", GuardBalanced},
		{"unknown falls back to balanced", "thrifty", GuardBalanced},
		{"garbage falls back to balanced", "premium!", GuardBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseBudgetGuard(tt.input); got != tt.want {
				t.Errorf("ParseBudgetGuard(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBudgetGuardValid(t *testing.T) {
	for _, g := range []BudgetGuard{GuardEconomy, GuardBalanced, GuardPremium} {
		if !g.Valid() {
			t.Errorf("Valid() = false for %v, want true", g)
		}
	}
	if BudgetGuard("Economy").Valid() {
		t.Error("Valid() = true for case-mismatched guard, want false")
	}
}
