package policy

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Policy bundles every keyword/marker list used by the decision pipeline.
// A Policy value is immutable after construction; hot reload swaps the whole
// value rather than mutating lists in place.
type Policy struct {
	HardKeywords   []string `yaml:"hard_keywords"`
	DangerMarkers  []string `yaml:"danger_markers"`
	RefusalMarkers []string `yaml:"refusal_markers"`
	GoodToneWords  []string `yaml:"good_tone_words"`
	BadToneWords   []string `yaml:"bad_tone_words"`
	VaguePhrases   []string `yaml:"vague_phrases"`
}

// Default returns the built-in policy lists.
func Default() *Policy {
	return &Policy{
		HardKeywords:   append([]string{}, DefaultHardKeywords...),
		DangerMarkers:  append([]string{}, DefaultDangerMarkers...),
		RefusalMarkers: append([]string{}, DefaultRefusalMarkers...),
		GoodToneWords:  append([]string{}, DefaultGoodToneWords...),
		BadToneWords:   append([]string{}, DefaultBadToneWords...),
		VaguePhrases:   append([]string{}, DefaultVaguePhrases...),
	}
}

// LoadFile reads a policy YAML file and merges it over the defaults.
// Lists present in the file replace the corresponding default list; absent
// lists keep their defaults.
func LoadFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy file: %w", err)
	}

	var loaded Policy
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parsing policy file %s: %w", path, err)
	}

	p := Default()
	if loaded.HardKeywords != nil {
		p.HardKeywords = loaded.HardKeywords
	}
	if loaded.DangerMarkers != nil {
		p.DangerMarkers = loaded.DangerMarkers
	}
	if loaded.RefusalMarkers != nil {
		p.RefusalMarkers = loaded.RefusalMarkers
	}
	if loaded.GoodToneWords != nil {
		p.GoodToneWords = loaded.GoodToneWords
	}
	if loaded.BadToneWords != nil {
		p.BadToneWords = loaded.BadToneWords
	}
	if loaded.VaguePhrases != nil {
		p.VaguePhrases = loaded.VaguePhrases
	}
	return p, nil
}

// Load returns the policy at path if it exists, or the defaults when path is
// empty or missing.
func Load(path string) (*Policy, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFile(path)
}
