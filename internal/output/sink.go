package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/handsomejack/treetool/internal/types"
)

const (
	markdownFence = "```"
	lineSeparator = "\n"

	// savedMessageFormat confirms a completed file write on stdout.
	savedMessageFormat = "Tree saved to: %s\n"
	// errorWriteOutputFormat reports an output file write failure.
	errorWriteOutputFormat = "writing output file %s: %w"

	outputFilePermissions = 0o644
)

// ValidateDestination checks the output path extension before any
// traversal work happens. An empty destination means stdout.
func ValidateDestination(destinationPath string) error {
	if destinationPath == "" {
		return nil
	}
	extension := strings.ToLower(filepath.Ext(destinationPath))
	switch extension {
	case types.OutputExtensionText, types.OutputExtensionMarkdown:
		return nil
	default:
		return &types.ConfigError{Reason: fmt.Sprintf("unsupported output extension %q (supported: %s, %s)", extension, types.OutputExtensionText, types.OutputExtensionMarkdown)}
	}
}

// WriteOutput delivers the rendered lines. An empty destination writes
// to the provided stdout writer. File destinations are written with a
// single write of a completed buffer so a failure never leaves a
// truncated file behind; Markdown destinations wrap the content in a
// fenced code block so the tree renders verbatim.
func WriteOutput(renderedLines []string, destinationPath string, stdout io.Writer) error {
	if destinationPath == "" {
		for _, line := range renderedLines {
			fmt.Fprintln(stdout, line)
		}
		return nil
	}

	if validationError := ValidateDestination(destinationPath); validationError != nil {
		return validationError
	}

	content := AssembleContent(renderedLines, destinationPath)
	if writeError := os.WriteFile(destinationPath, []byte(content), outputFilePermissions); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, destinationPath, writeError)
	}
	fmt.Fprintf(stdout, savedMessageFormat, destinationPath)
	return nil
}

// AssembleContent builds the complete file payload for the destination:
// the stdout lines as-is for text files, fenced for Markdown files.
func AssembleContent(renderedLines []string, destinationPath string) string {
	extension := strings.ToLower(filepath.Ext(destinationPath))
	if extension == types.OutputExtensionMarkdown {
		fencedLines := make([]string, 0, len(renderedLines)+2)
		fencedLines = append(fencedLines, markdownFence)
		fencedLines = append(fencedLines, renderedLines...)
		fencedLines = append(fencedLines, markdownFence)
		return strings.Join(fencedLines, lineSeparator) + lineSeparator
	}
	return strings.Join(renderedLines, lineSeparator) + lineSeparator
}
