// Package output renders entry trees into text lines and writes them to their destination.
package output

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/handsomejack/treetool/internal/types"
)

const (
	// directorySuffix marks directory entries, including the root line.
	directorySuffix = "/"
	// accessDeniedAnnotation marks directories that could not be listed.
	accessDeniedAnnotation = " [error opening dir]"
)

// glyphSet holds the four connector strings of one drawing style.
type glyphSet struct {
	branch     string
	lastBranch string
	vertical   string
	blank      string
}

// styleGlyphs is the closed lookup table of drawing styles. The style
// set is fixed by the CLI enum; it is not an extensible registry.
var styleGlyphs = map[string]glyphSet{
	types.StyleASCII:   {branch: "|-- ", lastBranch: "+-- ", vertical: "|   ", blank: "    "},
	types.StyleUnicode: {branch: "├── ", lastBranch: "└── ", vertical: "│   ", blank: "    "},
	types.StyleBold:    {branch: "┣━━ ", lastBranch: "┗━━ ", vertical: "┃   ", blank: "    "},
	types.StyleMinimal: {branch: "|-- ", lastBranch: "`-- ", vertical: "|   ", blank: "    "},
}

// StyleNames returns every accepted style name.
func StyleNames() []string {
	return []string{types.StyleASCII, types.StyleUnicode, types.StyleBold, types.StyleMinimal}
}

// IsSupportedStyle reports whether the named style exists in the glyph table.
func IsSupportedStyle(styleName string) bool {
	_, styleExists := styleGlyphs[styleName]
	return styleExists
}

// RenderTree converts the entry tree into output lines. The first line
// is the root name with a directory suffix and no connector glyphs;
// every descendant line carries the ancestor continuation columns
// followed by a branch or last-branch connector.
func RenderTree(rootEntry *types.Entry, styleName string) ([]string, error) {
	glyphs, styleExists := styleGlyphs[styleName]
	if !styleExists {
		return nil, &types.ConfigError{Reason: fmt.Sprintf("unknown style %q (valid styles: %v)", styleName, StyleNames())}
	}

	lines := []string{rootEntry.Name + directorySuffix}
	renderChildren(&lines, rootEntry.Children, "", glyphs)
	return lines, nil
}

// renderChildren appends one line per entry, recursing into directories
// with the continuation prefix extended by a vertical or blank column
// depending on whether the parent was the last child at its level.
func renderChildren(lines *[]string, entries []*types.Entry, prefix string, glyphs glyphSet) {
	for entryIndex, entry := range entries {
		isLast := entryIndex == len(entries)-1
		connector := glyphs.branch
		childPrefix := prefix + glyphs.vertical
		if isLast {
			connector = glyphs.lastBranch
			childPrefix = prefix + glyphs.blank
		}

		line := prefix + connector + entry.Name
		if entry.IsDirectory {
			line += directorySuffix
			if entry.AccessDenied {
				line += accessDeniedAnnotation
			}
		}
		*lines = append(*lines, line)

		if entry.IsDirectory {
			renderChildren(lines, entry.Children, childPrefix, glyphs)
		}
	}
}

// greenPainter colors terminal output lines. treetool paints every line
// the same green; coloring carries no per-entry meaning.
var greenPainter = color.New(color.FgGreen)

// ColorizeLines wraps each line in the terminal color sequence. Callers
// apply this only for terminal destinations; files and the clipboard
// always receive plain lines.
func ColorizeLines(lines []string) []string {
	coloredLines := make([]string, 0, len(lines))
	for _, line := range lines {
		coloredLines = append(coloredLines, greenPainter.Sprint(line))
	}
	return coloredLines
}
