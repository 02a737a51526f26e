package dupfind

import "slices"

// aggregate merges scheduler results into duplicate groups. Worker
// completion order is unspecified, so members are re-sorted by path and
// groups by digest to make every downstream surface deterministic.
func aggregate(results []hashResult) (groups []Group, skipped []Skip) {
	byDigest := make(map[string][]Candidate)
	for _, res := range results {
		if res.Err != nil {
			skipped = append(skipped, Skip{Path: res.Candidate.Path, Kind: ReadFailed, Err: res.Err})
			continue
		}
		byDigest[res.Digest] = append(byDigest[res.Digest], res.Candidate)
	}

	for digest, members := range byDigest {
		if len(members) < 2 {
			continue
		}
		slices.SortFunc(members, func(l, r Candidate) int {
			if l.Path < r.Path {
				return -1
			}
			if l.Path > r.Path {
				return 1
			}
			return 0
		})
		groups = append(groups, Group{Digest: digest, Size: members[0].Size, Members: members})
	}

	slices.SortFunc(groups, func(l, r Group) int {
		if l.Digest < r.Digest {
			return -1
		}
		if l.Digest > r.Digest {
			return 1
		}
		return 0
	})
	return groups, skipped
}
