// Package config loads ignore files, preset bundles, and application defaults.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const commentLinePrefix = "#"

// LoadIgnoreFilePatterns reads an ignore file and returns its patterns.
// Lines are trimmed; blank lines and lines starting with "#" are skipped.
// A missing file is an error: an explicitly requested ignore file that
// does not exist indicates a misconfigured invocation.
//
// #nosec G304
func LoadIgnoreFilePatterns(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		return nil, fmt.Errorf("opening ignore file %s: %w", ignoreFilePath, openFileError)
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", ignoreFilePath, closeError)
		}
	}()

	var patterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentLinePrefix) {
			continue
		}
		patterns = append(patterns, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, fmt.Errorf("reading ignore file %s: %w", ignoreFilePath, scanError)
	}
	return patterns, nil
}
