package report

import (
	"fmt"
	"io"

	"github.com/docker/go-units"
	"github.com/fatih/color"
	"github.com/google/btree"

	"github.com/gofindup/findup/internal/dupfind"
)

// rankedGroup orders duplicate groups by reclaimable bytes, largest first,
// with the digest breaking ties so iteration order is total.
type rankedGroup struct {
	wasted int64
	group  dupfind.Group
}

func rankLess(l, r rankedGroup) bool {
	if l.wasted != r.wasted {
		return l.wasted > r.wasted
	}
	return l.group.Digest < r.group.Digest
}

// orderedGroups returns groups sorted by descending reclaimable bytes.
func orderedGroups(groups []dupfind.Group) []dupfind.Group {
	tree := btree.NewG(2, rankLess)
	for _, g := range groups {
		tree.ReplaceOrInsert(rankedGroup{wasted: g.WastedBytes(), group: g})
	}
	out := make([]dupfind.Group, 0, len(groups))
	tree.Ascend(func(item rankedGroup) bool {
		out = append(out, item.group)
		return true
	})
	return out
}

// Print writes the human-readable duplicate report.
func Print(w io.Writer, res *dupfind.Result) {
	if len(res.Groups) == 0 {
		fmt.Fprintln(w, "No duplicates found.")
		printSkipped(w, res.Skipped)
		return
	}

	heading := color.New(color.Bold)
	digestColor := color.New(color.FgCyan)

	heading.Fprintf(w, "Duplicate files found (%d groups):\n\n", len(res.Groups))
	for i, g := range orderedGroups(res.Groups) {
		fmt.Fprintf(w, "Group %d (%s, %s each, %s reclaimable):\n",
			i+1,
			digestColor.Sprint(shortDigest(g.Digest)),
			units.HumanSize(float64(g.Size)),
			units.HumanSize(float64(g.WastedBytes())))
		for _, path := range g.Paths() {
			fmt.Fprintf(w, "  %s\n", path)
		}
		fmt.Fprintln(w)
	}
	printSkipped(w, res.Skipped)
}

func printSkipped(w io.Writer, skipped []dupfind.Skip) {
	if len(skipped) == 0 {
		return
	}
	warn := color.New(color.FgYellow)
	warn.Fprintf(w, "Skipped %d unreadable path(s):\n", len(skipped))
	for _, s := range skipped {
		fmt.Fprintf(w, "  %s (%s)\n", s.Path, s.Kind)
	}
	fmt.Fprintln(w)
}

// PrintSummary writes the scan statistics, and the deletion outcome when
// deletion ran.
func PrintSummary(w io.Writer, res *dupfind.Result, deletion *dupfind.DeleteSummary) {
	fmt.Fprintf(w, "Scanned %d files, hashed %d candidates.\n", res.Stats.FilesSeen, res.Stats.CandidatesHashed)
	fmt.Fprintf(w, "Duplicates found: %d in %d groups (%s reclaimable).\n",
		res.Stats.DuplicateFiles,
		res.Stats.DuplicateGroups,
		units.HumanSize(float64(res.Stats.WastedBytes)))
	if deletion != nil {
		fmt.Fprintf(w, "Deleted %d files, reclaimed %s, %d deletion failure(s).\n",
			deletion.FilesDeleted,
			units.HumanSize(float64(deletion.BytesReclaimed)),
			len(deletion.Failures))
	}
}

func shortDigest(digest string) string {
	if len(digest) <= 12 {
		return digest
	}
	return digest[:12] + "..."
}
