package config

import (
	"fmt"

	"github.com/handsomejack/treetool/internal/types"
	"github.com/handsomejack/treetool/internal/utils"
)

// presetBundles maps each preset name to its ignore patterns.
var presetBundles = map[string][]string{
	types.PresetPython: {
		"__pycache__", "*.pyc", "*.pyo", "*.pyd", ".Python",
		"*.so", ".venv", "venv", "ENV", "env",
		"*.egg-info", "*.egg", "dist", "build",
		".pytest_cache", ".mypy_cache", ".tox",
		"*.py[cod]", ".coverage", "htmlcov",
	},
	types.PresetNode: {
		"node_modules", "npm-debug.log*", "yarn-debug.log*",
		"yarn-error.log*", ".npm", ".yarn", "dist",
		"build", ".next", ".nuxt", "coverage",
	},
	types.PresetGit: {
		".git", ".gitignore", ".gitattributes", ".gitmodules",
	},
	types.PresetIDE: {
		".idea", ".vscode", "*.swp", "*.swo", "*~",
		".project", ".settings", ".classpath",
		"*.sublime-*", ".atom",
	},
}

// presetExpansionOrder fixes the bundle order used when expanding "all"
// so repeated runs produce identical pattern sequences.
var presetExpansionOrder = []string{types.PresetPython, types.PresetNode, types.PresetGit, types.PresetIDE}

// PresetNames returns every accepted preset name including "all".
func PresetNames() []string {
	names := make([]string, 0, len(presetExpansionOrder)+1)
	names = append(names, presetExpansionOrder...)
	names = append(names, types.PresetAll)
	return names
}

// PresetPatterns expands the requested preset names into one deduplicated
// pattern list. Repeated presets union their bundles; "all" expands to
// the union of every bundle. An unknown name is a configuration error.
func PresetPatterns(presetNames []string) ([]string, error) {
	var collectedPatterns []string
	for _, presetName := range presetNames {
		if presetName == types.PresetAll {
			for _, bundleName := range presetExpansionOrder {
				collectedPatterns = append(collectedPatterns, presetBundles[bundleName]...)
			}
			continue
		}
		bundlePatterns, bundleExists := presetBundles[presetName]
		if !bundleExists {
			return nil, &types.ConfigError{Reason: fmt.Sprintf("unknown preset %q (valid presets: %v)", presetName, PresetNames())}
		}
		collectedPatterns = append(collectedPatterns, bundlePatterns...)
	}
	return utils.DeduplicatePatterns(collectedPatterns), nil
}
