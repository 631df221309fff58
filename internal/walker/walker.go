// Package walker performs the depth-first traversal that materializes the entry tree.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/handsomejack/treetool/internal/ignore"
	"github.com/handsomejack/treetool/internal/types"
)

const (
	// warningSkipSubdirFormat is used when a subdirectory cannot be listed.
	warningSkipSubdirFormat = "Warning: skipping subdirectory %s due to error: %v\n"
	// warningStatPathFormat is used when entry information cannot be retrieved.
	warningStatPathFormat = "Warning: unable to stat %s: %v\n"

	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorReadRootFormat is used when the root directory cannot be read.
	errorReadRootFormat = "reading directory %s: %w"

	// reasonPathMissing describes a nonexistent root path.
	reasonPathMissing = "does not exist"
	// reasonNotDirectory describes a root path that is not a directory.
	reasonNotDirectory = "is not a directory"
)

// TreeWalker materializes a tree of visible entries for one run.
type TreeWalker struct {
	Policy     *ignore.Policy
	MaxDepth   int
	Alphabetic bool
}

// NewTreeWalker builds a walker from the run configuration.
func NewTreeWalker(runConfig types.RunConfig) *TreeWalker {
	return &TreeWalker{
		Policy:     ignore.NewPolicy(runConfig),
		MaxDepth:   runConfig.MaxDepth,
		Alphabetic: runConfig.Alphabetic,
	}
}

// Walk traverses the filesystem from rootDirectoryPath and returns the
// root entry with all visible descendants attached. The root itself is
// always visible; exclusion rules apply to descendants only. A root
// that is missing or not a directory is a fatal path error; a root that
// exists but cannot be listed is fatal as well. Unreadable
// subdirectories below the root are tolerated: the entry is marked
// access-denied, kept as a leaf, and a warning goes to stderr.
func (treeWalker *TreeWalker) Walk(rootDirectoryPath string) (*types.Entry, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootDirectoryPath)
	if absolutePathError != nil {
		return nil, fmt.Errorf(errorAbsolutePathFormat, rootDirectoryPath, absolutePathError)
	}

	rootInfo, rootStatError := os.Stat(absoluteRootPath)
	if rootStatError != nil {
		return nil, &types.PathError{Path: absoluteRootPath, Reason: reasonPathMissing}
	}
	if !rootInfo.IsDir() {
		return nil, &types.PathError{Path: absoluteRootPath, Reason: reasonNotDirectory}
	}

	rootEntry := &types.Entry{
		Name:        filepath.Base(absoluteRootPath),
		Path:        absoluteRootPath,
		IsDirectory: true,
		Depth:       0,
	}

	if treeWalker.MaxDepth == 0 {
		return rootEntry, nil
	}

	children, readError := treeWalker.walkChildren(absoluteRootPath, 0)
	if readError != nil {
		return nil, fmt.Errorf(errorReadRootFormat, absoluteRootPath, readError)
	}
	rootEntry.Children = children

	return rootEntry, nil
}

// walkChildren lists one directory and recursively builds its visible
// child entries. parentDepth is the depth of the directory being
// listed; its children sit at parentDepth+1. The visibility policy is
// consulted before recursion so excluded directories are pruned, never
// descended into.
func (treeWalker *TreeWalker) walkChildren(directoryPath string, parentDepth int) ([]*types.Entry, error) {
	childDepth := parentDepth + 1
	if treeWalker.MaxDepth != types.DepthUnbounded && childDepth > treeWalker.MaxDepth {
		return nil, nil
	}

	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return nil, readDirectoryError
	}

	visibleEntries := make([]*types.Entry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		childPath := filepath.Join(directoryPath, directoryEntry.Name())

		// Classify through os.Stat so symbolic links take their target type.
		isDirectory := directoryEntry.IsDir()
		entryInfo, statError := os.Stat(childPath)
		if statError == nil {
			isDirectory = entryInfo.IsDir()
		} else if !directoryEntry.Type().IsRegular() && !directoryEntry.IsDir() {
			fmt.Fprintf(os.Stderr, warningStatPathFormat, childPath, statError)
		}

		if !treeWalker.Policy.IsVisible(directoryEntry.Name(), isDirectory) {
			continue
		}

		childEntry := &types.Entry{
			Name:        directoryEntry.Name(),
			Path:        childPath,
			IsDirectory: isDirectory,
			Depth:       childDepth,
		}

		if isDirectory {
			grandchildren, descendError := treeWalker.walkChildren(childPath, childDepth)
			if descendError != nil {
				childEntry.AccessDenied = true
				fmt.Fprintf(os.Stderr, warningSkipSubdirFormat, childPath, descendError)
			} else {
				childEntry.Children = grandchildren
			}
		}

		visibleEntries = append(visibleEntries, childEntry)
	}

	treeWalker.sortEntries(visibleEntries)
	return visibleEntries, nil
}

// sortEntries orders siblings: directories before files with each group
// ascending by name, or one combined ascending sequence in alphabetic
// mode. Comparison is case-sensitive byte order.
func (treeWalker *TreeWalker) sortEntries(entries []*types.Entry) {
	if treeWalker.Alphabetic {
		sort.SliceStable(entries, func(firstIndex, secondIndex int) bool {
			return entries[firstIndex].Name < entries[secondIndex].Name
		})
		return
	}
	sort.SliceStable(entries, func(firstIndex, secondIndex int) bool {
		if entries[firstIndex].IsDirectory != entries[secondIndex].IsDirectory {
			return entries[firstIndex].IsDirectory
		}
		return entries[firstIndex].Name < entries[secondIndex].Name
	})
}
