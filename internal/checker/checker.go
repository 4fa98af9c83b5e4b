// Package checker scores produced outputs and decides whether they are good
// enough or should be retried at the next tier. Signals are deliberately
// cheap: fixed-list substring and regex matches, no model calls.
package checker

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/strataai/strata/internal/policy"
	"github.com/strataai/strata/pkg/models"
)

// minSubstantiveLength is the trimmed length below which an output counts as
// empty.
const minSubstantiveLength = 15

// vagueMatchThreshold is how many hedge-phrase matches flag an output as vague.
const vagueMatchThreshold = 2

// escalationConfidenceFloor is the confidence below which hard-task outputs
// escalate.
const escalationConfidenceFloor = 0.6

// Checker evaluates output text against injected policy lists.
type Checker struct {
	dangerMarkers  []string
	refusalMarkers []string
	goodToneWords  []string
	badToneWords   []string
	vaguePattern   *regexp.Regexp
}

// New creates a Checker from the given policy lists.
func New(p *policy.Policy) *Checker {
	return &Checker{
		dangerMarkers:  append([]string{}, p.DangerMarkers...),
		refusalMarkers: append([]string{}, p.RefusalMarkers...),
		goodToneWords:  append([]string{}, p.GoodToneWords...),
		badToneWords:   append([]string{}, p.BadToneWords...),
		vaguePattern:   compileVaguePattern(p.VaguePhrases),
	}
}

// NewDefault creates a Checker with the built-in policy lists.
func NewDefault() *Checker {
	return New(policy.Default())
}

// compileVaguePattern builds a word-boundary alternation over the hedge
// phrases, matched case-insensitively.
func compileVaguePattern(phrases []string) *regexp.Regexp {
	if len(phrases) == 0 {
		return nil
	}
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// ContainsDanger reports whether the text contains any danger marker.
// A match mandates escalation regardless of any other signal.
func (c *Checker) ContainsDanger(text string) bool {
	lower := strings.ToLower(text)
	for _, m := range c.dangerMarkers {
		if strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

// ContainsRefusal reports whether the text contains a refusal marker.
// Diagnostic only; refusals do not feed the escalation decision.
func (c *Checker) ContainsRefusal(text string) bool {
	lower := strings.ToLower(text)
	for _, m := range c.refusalMarkers {
		if strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

// LooksEmptyOrVague reports whether the trimmed text is too short to be
// substantive, or hedges at least twice.
func (c *Checker) LooksEmptyOrVague(text string) bool {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minSubstantiveLength {
		return true
	}
	if c.vaguePattern == nil {
		return false
	}
	return len(c.vaguePattern.FindAllStringIndex(trimmed, -1)) >= vagueMatchThreshold
}

// BasicConfidence returns a length-bucketed confidence score. This is a
// coarse proxy for substantiveness, not semantic quality.
func (c *Checker) BasicConfidence(text string) float64 {
	switch l := utf8.RuneCountInString(text); {
	case l < 50:
		return 0.2
	case l < 150:
		return 0.5
	case l < 400:
		return 0.7
	default:
		return 0.8
	}
}

// ScoreTone scores the text's tone: 0.5 baseline, +0.1 per distinct good
// word, -0.2 per distinct bad word, clamped to [0, 1].
func (c *Checker) ScoreTone(text string) float64 {
	lower := strings.ToLower(text)
	var good, bad int
	for _, w := range c.goodToneWords {
		if strings.Contains(lower, strings.ToLower(w)) {
			good++
		}
	}
	for _, w := range c.badToneWords {
		if strings.Contains(lower, strings.ToLower(w)) {
			bad++
		}
	}
	return clamp(0.5+0.1*float64(good)-0.2*float64(bad), 0.0, 1.0)
}

// ShouldEscalate decides whether a single output needs the next tier:
// danger always escalates, then vagueness, then low confidence on hard tasks.
func (c *Checker) ShouldEscalate(text string, isHard bool) bool {
	if c.ContainsDanger(text) {
		return true
	}
	if c.LooksEmptyOrVague(text) {
		return true
	}
	if isHard && c.BasicConfidence(text) < escalationConfidenceFloor {
		return true
	}
	return false
}

// EvaluateSingle scores one output and returns the escalation verdict.
func (c *Checker) EvaluateSingle(text string, isHard bool) models.EvaluationResult {
	return models.EvaluationResult{
		NeedsEscalation: c.ShouldEscalate(text, isHard),
		Confidence:      c.BasicConfidence(text),
		Danger:          c.ContainsDanger(text),
		Refusal:         c.ContainsRefusal(text),
	}
}

// EvaluateBatch evaluates a named batch of outputs. The batch fails if any
// output is dangerous or vague; the trust score is the mean tone score
// clamped to [0.2, 0.95]. An empty batch passes vacuously with the floor
// trust score.
func (c *Checker) EvaluateBatch(outputs map[string]string) models.BatchEvaluationResult {
	passed := true
	toneScores := make(map[string]float64, len(outputs))

	var toneSum float64
	for name, text := range outputs {
		if c.ContainsDanger(text) {
			passed = false
		}
		if c.LooksEmptyOrVague(text) {
			passed = false
		}
		score := c.ScoreTone(text)
		toneScores[name] = score
		toneSum += score
	}

	n := len(toneScores)
	if n == 0 {
		n = 1
	}
	trust := clamp(toneSum/float64(n), 0.2, 0.95)

	return models.BatchEvaluationResult{
		Passed:     passed,
		TrustScore: trust,
		ToneScores: toneScores,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
