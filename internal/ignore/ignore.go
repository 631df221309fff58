// Package ignore compiles exclusion patterns and decides entry visibility.
package ignore

import (
	"path/filepath"
	"strings"

	"github.com/handsomejack/treetool/internal/types"
)

const (
	directoryPatternSuffix = "/"
	hiddenNamePrefix       = "."
)

// CompileRules converts raw pattern strings into ignore rules. A pattern
// ending in "/" matches directories only; the suffix is stripped before
// comparison. Callers are expected to have dropped comments and blank
// lines already.
func CompileRules(patterns []string) []types.IgnoreRule {
	rules := make([]types.IgnoreRule, 0, len(patterns))
	for patternIndex, patternValue := range patterns {
		trimmedPattern := strings.TrimSpace(patternValue)
		if trimmedPattern == "" {
			continue
		}
		rule := types.IgnoreRule{
			Pattern:     trimmedPattern,
			SourceOrder: patternIndex,
		}
		if strings.HasSuffix(trimmedPattern, directoryPatternSuffix) {
			rule.Pattern = strings.TrimSuffix(trimmedPattern, directoryPatternSuffix)
			rule.DirectoryOnly = true
		}
		rules = append(rules, rule)
	}
	return rules
}

// Matches reports whether a single rule excludes the named entry.
// Matching is case-sensitive glob comparison against the base name:
// "*" matches any run of characters without a separator and "?" matches
// exactly one character. A pattern without wildcards reduces to exact
// name equality under the same semantics.
func Matches(rule types.IgnoreRule, candidateName string, isDirectory bool) bool {
	if rule.DirectoryOnly && !isDirectory {
		return false
	}
	isMatched, matchError := filepath.Match(rule.Pattern, candidateName)
	if matchError != nil {
		return false
	}
	return isMatched
}

// Policy aggregates every exclusion source into one visibility decision.
// The decision is a pure function of the entry name and kind; it never
// depends on traversal depth or sibling state.
type Policy struct {
	Rules           []types.IgnoreRule
	HideHidden      bool
	DirectoriesOnly bool
	FilesOnly       bool
}

// NewPolicy builds the visibility policy for one run configuration.
func NewPolicy(runConfig types.RunConfig) *Policy {
	return &Policy{
		Rules:           runConfig.Rules,
		HideHidden:      runConfig.HideHidden,
		DirectoriesOnly: runConfig.DirectoriesOnly,
		FilesOnly:       runConfig.FilesOnly,
	}
}

// IsVisible reports whether the named entry survives all exclusion
// sources. Sources are a union: any match excludes.
func (policy *Policy) IsVisible(candidateName string, isDirectory bool) bool {
	if policy.HideHidden && strings.HasPrefix(candidateName, hiddenNamePrefix) {
		return false
	}
	if policy.DirectoriesOnly && !isDirectory {
		return false
	}
	if policy.FilesOnly && isDirectory {
		return false
	}
	for _, rule := range policy.Rules {
		if Matches(rule, candidateName, isDirectory) {
			return false
		}
	}
	return true
}
