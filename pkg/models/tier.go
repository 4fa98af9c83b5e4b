package models

// Tier represents an inference tier for task execution.
type Tier string

const (
	// TierA is the cheap/fast tier for bulk traffic.
	TierA Tier = "tierA"
	// TierB is the mid tier for nuanced reasoning and quality.
	TierB Tier = "tierB"
	// TierC is the premium tier, reserved for edge cases.
	TierC Tier = "tierC"
)

// Tiers lists all tiers in ascending cost/quality order.
var Tiers = []Tier{TierA, TierB, TierC}

// Valid returns true if the tier is a known value.
func (t Tier) Valid() bool {
	switch t {
	case TierA, TierB, TierC:
		return true
	default:
		return false
	}
}

// Rank returns the tier's position in the cost/quality ordering
// (0 for TierA, 1 for TierB, 2 for TierC). Unknown tiers rank -1.
func (t Tier) Rank() int {
	switch t {
	case TierA:
		return 0
	case TierB:
		return 1
	case TierC:
		return 2
	default:
		return -1
	}
}
