package dupfind

import (
	"slices"

	"github.com/gofindup/findup/internal/sliceutil"
)

// SizeGroup is a set of candidates sharing an exact byte size.
type SizeGroup struct {
	Size    int64
	Members []Candidate
}

// groupBySize partitions candidates by exact byte size and keeps only
// groups with two or more members; a file with a unique size cannot have a
// duplicate, so dropping those groups is what saves hashing the bulk of a
// typical tree.
func groupBySize(candidates []Candidate) []SizeGroup {
	slices.SortFunc(candidates, func(l, r Candidate) int {
		if l.Size != r.Size {
			if l.Size < r.Size {
				return -1
			}
			return 1
		}
		if l.Path < r.Path {
			return -1
		}
		if l.Path > r.Path {
			return 1
		}
		return 0
	})

	runs := sliceutil.GroupBy(candidates, func(l, r *Candidate) bool {
		return l.Size == r.Size
	})

	var groups []SizeGroup
	for _, run := range runs {
		if len(run) < 2 {
			continue
		}
		groups = append(groups, SizeGroup{Size: run[0].Size, Members: run})
	}
	return groups
}

func flattenGroups(groups []SizeGroup) []Candidate {
	var out []Candidate
	for _, g := range groups {
		out = append(out, g.Members...)
	}
	return out
}
