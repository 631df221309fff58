package output

import (
	"fmt"

	"github.com/handsomejack/treetool/internal/types"
)

const (
	statsSeparatorLine = "----------------------------------------"

	statsDirectoriesFormat = "Directories: %d"
	statsFilesFormat       = "Files:       %d"
	statsMaxDepthFormat    = "Max Depth:   %d"
)

// CollectStats tallies the visible entries of a materialized tree. The
// root entry is excluded from the directory and file counts. MaxDepth
// is the depth of the deepest directory traversal attempted, with the
// root at depth zero; directories cut off by the depth limit do not
// advance it, while unreadable directories do (the walk reached them).
func CollectStats(rootEntry *types.Entry) types.TreeStats {
	stats := types.TreeStats{}
	if rootEntry == nil {
		return stats
	}
	tallyEntries(rootEntry.Children, &stats)
	return stats
}

func tallyEntries(entries []*types.Entry, stats *types.TreeStats) {
	for _, entry := range entries {
		if entry.IsDirectory {
			stats.Directories++
			if (entry.Children != nil || entry.AccessDenied) && entry.Depth > stats.MaxDepth {
				stats.MaxDepth = entry.Depth
			}
			tallyEntries(entry.Children, stats)
		} else {
			stats.Files++
		}
	}
}

// FormatStats renders the statistics block appended below the tree.
func FormatStats(stats types.TreeStats) []string {
	return []string{
		"",
		statsSeparatorLine,
		fmt.Sprintf(statsDirectoriesFormat, stats.Directories),
		fmt.Sprintf(statsFilesFormat, stats.Files),
		fmt.Sprintf(statsMaxDepthFormat, stats.MaxDepth),
		statsSeparatorLine,
	}
}
