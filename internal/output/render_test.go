package output_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/handsomejack/treetool/internal/output"
	"github.com/handsomejack/treetool/internal/types"
)

// sampleProjectTree mirrors the canonical fixture:
// src/{main.py,utils.py}, tests/test_main.py, README.md, setup.py.
func sampleProjectTree() *types.Entry {
	return &types.Entry{
		Name:        "project",
		IsDirectory: true,
		Depth:       0,
		Children: []*types.Entry{
			{
				Name: "src", IsDirectory: true, Depth: 1,
				Children: []*types.Entry{
					{Name: "main.py", Depth: 2},
					{Name: "utils.py", Depth: 2},
				},
			},
			{
				Name: "tests", IsDirectory: true, Depth: 1,
				Children: []*types.Entry{
					{Name: "test_main.py", Depth: 2},
				},
			},
			{Name: "README.md", Depth: 1},
			{Name: "setup.py", Depth: 1},
		},
	}
}

// asciiProjectLines is the expected ascii rendering of sampleProjectTree.
var asciiProjectLines = []string{
	"project/",
	"|-- src/",
	"|   |-- main.py",
	"|   +-- utils.py",
	"|-- tests/",
	"|   +-- test_main.py",
	"|-- README.md",
	"+-- setup.py",
}

func TestRenderTreeASCIIScenario(testingInstance *testing.T) {
	lines, renderError := output.RenderTree(sampleProjectTree(), types.StyleASCII)
	if renderError != nil {
		testingInstance.Fatalf("RenderTree error: %v", renderError)
	}
	if len(lines) != len(asciiProjectLines) {
		testingInstance.Fatalf("line count: got %d, want %d", len(lines), len(asciiProjectLines))
	}
	for lineIndex := range lines {
		if lines[lineIndex] != asciiProjectLines[lineIndex] {
			testingInstance.Errorf("line %d: got %q, want %q", lineIndex, lines[lineIndex], asciiProjectLines[lineIndex])
		}
	}
}

// glyphSubstitutions maps unicode connectors onto their ascii equivalents.
var glyphSubstitutions = strings.NewReplacer(
	"├── ", "|-- ",
	"└── ", "+-- ",
	"│   ", "|   ",
)

func TestRenderTreeStylesAreStructurallyEquivalent(testingInstance *testing.T) {
	asciiLines, asciiError := output.RenderTree(sampleProjectTree(), types.StyleASCII)
	if asciiError != nil {
		testingInstance.Fatalf("ascii render error: %v", asciiError)
	}
	unicodeLines, unicodeError := output.RenderTree(sampleProjectTree(), types.StyleUnicode)
	if unicodeError != nil {
		testingInstance.Fatalf("unicode render error: %v", unicodeError)
	}

	if len(asciiLines) != len(unicodeLines) {
		testingInstance.Fatalf("style change altered line count: ascii %d, unicode %d", len(asciiLines), len(unicodeLines))
	}
	for lineIndex := range unicodeLines {
		substituted := glyphSubstitutions.Replace(unicodeLines[lineIndex])
		if substituted != asciiLines[lineIndex] {
			testingInstance.Errorf("line %d differs beyond glyph substitution: %q vs %q",
				lineIndex, unicodeLines[lineIndex], asciiLines[lineIndex])
		}
	}
}

func TestRenderTreeBoldAndMinimalGlyphs(testingInstance *testing.T) {
	tree := &types.Entry{
		Name: "root", IsDirectory: true,
		Children: []*types.Entry{
			{Name: "first", Depth: 1},
			{Name: "second", Depth: 1},
		},
	}

	boldLines, boldError := output.RenderTree(tree, types.StyleBold)
	if boldError != nil {
		testingInstance.Fatalf("bold render error: %v", boldError)
	}
	if boldLines[1] != "┣━━ first" || boldLines[2] != "┗━━ second" {
		testingInstance.Errorf("unexpected bold connectors: %v", boldLines[1:])
	}

	minimalLines, minimalError := output.RenderTree(tree, types.StyleMinimal)
	if minimalError != nil {
		testingInstance.Fatalf("minimal render error: %v", minimalError)
	}
	if minimalLines[1] != "|-- first" || minimalLines[2] != "`-- second" {
		testingInstance.Errorf("unexpected minimal connectors: %v", minimalLines[1:])
	}
}

func TestRenderTreeAccessDeniedAnnotation(testingInstance *testing.T) {
	tree := &types.Entry{
		Name: "root", IsDirectory: true,
		Children: []*types.Entry{
			{Name: "restricted", IsDirectory: true, AccessDenied: true, Depth: 1},
		},
	}
	lines, renderError := output.RenderTree(tree, types.StyleASCII)
	if renderError != nil {
		testingInstance.Fatalf("RenderTree error: %v", renderError)
	}
	if lines[1] != "+-- restricted/ [error opening dir]" {
		testingInstance.Errorf("unexpected access-denied line: %q", lines[1])
	}
}

func TestRenderTreeRejectsUnknownStyle(testingInstance *testing.T) {
	_, renderError := output.RenderTree(sampleProjectTree(), "curly")
	var configError *types.ConfigError
	if !errors.As(renderError, &configError) {
		testingInstance.Fatalf("unknown style should yield a ConfigError, got %v", renderError)
	}
}

func TestColorizeLinesWrapsEveryLine(testingInstance *testing.T) {
	previousNoColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = previousNoColor }()

	coloredLines := output.ColorizeLines([]string{"project/", "+-- setup.py"})
	if len(coloredLines) != 2 {
		testingInstance.Fatalf("line count changed: %d", len(coloredLines))
	}
	for _, line := range coloredLines {
		if !strings.HasPrefix(line, "\x1b[32m") || !strings.HasSuffix(line, "\x1b[0m") {
			testingInstance.Errorf("line not wrapped in green escape sequence: %q", line)
		}
	}
}
