package models

import "testing"

func TestTierValid(t *testing.T) {
	tests := []struct {
		name string
		tier Tier
		want bool
	}{
		{"tierA", TierA, true},
		{"tierB", TierB, true},
		{"tierC", TierC, true},
		{"empty", Tier(""), false},
		{"unknown", Tier("tierD"), false},
		{"wrong case", Tier("TierA"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tier.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTierRankOrdering(t *testing.T) {
	// Tiers must rank strictly increasing in cost/quality: A < B < C.
	if !(TierA.Rank() < TierB.Rank() && TierB.Rank() < TierC.Rank()) {
		t.Errorf("tier ranks not strictly increasing: A=%d B=%d C=%d",
			TierA.Rank(), TierB.Rank(), TierC.Rank())
	}
	if got := Tier("bogus").Rank(); got != -1 {
		t.Errorf("Rank() for unknown tier = %d, want -1", got)
	}
}

func TestTiersOrder(t *testing.T) {
	want := []Tier{TierA, TierB, TierC}
	if len(Tiers) != len(want) {
		t.Fatalf("Tiers has %d entries, want %d", len(Tiers), len(want))
	}
	for i, tier := range want {
		if Tiers[i] != tier {
			t.Errorf("Tiers[%d] = %v, want %v", i, Tiers[i], tier)
		}
	}
}
