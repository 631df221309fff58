package config

import (
	"errors"
	"testing"

	"github.com/handsomejack/treetool/internal/types"
	"github.com/handsomejack/treetool/internal/utils"
)

func TestPresetPatternsSingleBundle(t *testing.T) {
	patterns, presetError := PresetPatterns([]string{types.PresetPython})
	if presetError != nil {
		t.Fatalf("PresetPatterns error: %v", presetError)
	}
	if !utils.ContainsString(patterns, "__pycache__") {
		t.Errorf("python preset should include __pycache__: %v", patterns)
	}
	if utils.ContainsString(patterns, "node_modules") {
		t.Errorf("python preset should not include node patterns: %v", patterns)
	}
}

func TestPresetPatternsUnionsRepeatedPresets(t *testing.T) {
	patterns, presetError := PresetPatterns([]string{types.PresetPython, types.PresetNode})
	if presetError != nil {
		t.Fatalf("PresetPatterns error: %v", presetError)
	}
	if !utils.ContainsString(patterns, "__pycache__") || !utils.ContainsString(patterns, "node_modules") {
		t.Errorf("preset union incomplete: %v", patterns)
	}
	// "dist" appears in both bundles and must survive exactly once.
	occurrences := 0
	for _, pattern := range patterns {
		if pattern == "dist" {
			occurrences++
		}
	}
	if occurrences != 1 {
		t.Errorf("shared pattern should be deduplicated, found %d occurrences", occurrences)
	}
}

func TestPresetPatternsAllExpandsEveryBundle(t *testing.T) {
	allPatterns, presetError := PresetPatterns([]string{types.PresetAll})
	if presetError != nil {
		t.Fatalf("PresetPatterns error: %v", presetError)
	}
	for _, representative := range []string{"__pycache__", "node_modules", ".git", ".idea"} {
		if !utils.ContainsString(allPatterns, representative) {
			t.Errorf("all preset missing %q", representative)
		}
	}
}

func TestPresetPatternsUnknownName(t *testing.T) {
	_, presetError := PresetPatterns([]string{"rust"})
	var configError *types.ConfigError
	if !errors.As(presetError, &configError) {
		t.Fatalf("unknown preset should yield a ConfigError, got %v", presetError)
	}
}

func TestPresetPatternsNoPresets(t *testing.T) {
	patterns, presetError := PresetPatterns(nil)
	if presetError != nil {
		t.Fatalf("PresetPatterns error: %v", presetError)
	}
	if len(patterns) != 0 {
		t.Errorf("no presets should produce no patterns: %v", patterns)
	}
}
