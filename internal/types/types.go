// Package types defines every cross-package data structure used by the treetool CLI.
package types

import "fmt"

const (
	// StyleASCII draws the tree with plain ASCII connectors.
	StyleASCII = "ascii"
	// StyleUnicode draws the tree with box-drawing connectors.
	StyleUnicode = "unicode"
	// StyleBold draws the tree with heavy box-drawing connectors.
	StyleBold = "bold"
	// StyleMinimal draws the tree with a reduced ASCII connector set.
	StyleMinimal = "minimal"

	// PresetPython names the Python ecosystem ignore bundle.
	PresetPython = "python"
	// PresetNode names the Node ecosystem ignore bundle.
	PresetNode = "node"
	// PresetGit names the Git metadata ignore bundle.
	PresetGit = "git"
	// PresetIDE names the editor/IDE ignore bundle.
	PresetIDE = "ide"
	// PresetAll expands to the union of every preset bundle.
	PresetAll = "all"

	// OutputExtensionText is the plain-text output file extension.
	OutputExtensionText = ".txt"
	// OutputExtensionMarkdown is the Markdown output file extension.
	OutputExtensionMarkdown = ".md"
)

// Entry represents one filesystem object in the materialized tree.
// Children is nil when traversal did not descend (depth cutoff or an
// unreadable directory) and an empty non-nil slice when the directory
// was read and contained no visible entries.
type Entry struct {
	Name         string
	Path         string
	IsDirectory  bool
	AccessDenied bool
	Depth        int
	Children     []*Entry
}

// IgnoreRule is one compiled exclusion pattern. SourceOrder records the
// position of the pattern among all collected patterns and exists for
// diagnostics only; matching is an unordered union.
type IgnoreRule struct {
	Pattern       string
	DirectoryOnly bool
	SourceOrder   int
}

// RunConfig is the resolved, immutable option set for one invocation.
type RunConfig struct {
	RootPath        string
	MaxDepth        int
	DirectoriesOnly bool
	FilesOnly       bool
	Alphabetic      bool
	Style           string
	ShowStats       bool
	UseColor        bool
	HideHidden      bool
	Rules           []IgnoreRule
	OutputPath      string
	CopyToClipboard bool
}

// DepthUnbounded is the MaxDepth value meaning no depth limit.
const DepthUnbounded = -1

// TreeStats tallies the visible entries of a materialized tree.
// The root entry is not counted; it is the subject being described.
type TreeStats struct {
	Directories int
	Files       int
	MaxDepth    int
}

// PathError reports that the requested root path is unusable.
type PathError struct {
	Path   string
	Reason string
}

// Error formats the path error message.
func (pathError *PathError) Error() string {
	return fmt.Sprintf("path %s: %s", pathError.Path, pathError.Reason)
}

// ConfigError reports an invalid option combination or value detected
// before traversal begins.
type ConfigError struct {
	Reason string
}

// Error formats the configuration error message.
func (configError *ConfigError) Error() string {
	return configError.Reason
}
