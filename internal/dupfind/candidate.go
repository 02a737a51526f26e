// Package dupfind implements the duplicate detection pipeline: collect
// candidate files, group them by size, hash the multi-member groups in
// parallel, and aggregate paths that share a digest.
package dupfind

// Candidate is a file under consideration for duplicate analysis.
// Identity is the absolute path; size and mtime are captured once during
// the walk and never re-observed by the pipeline.
type Candidate struct {
	Path  string
	Size  int64
	Mtime int64
}

// FailureKind classifies why a file was dropped from the pipeline, so
// callers can tell expected transient skips apart from anything else.
type FailureKind int

const (
	StatFailed FailureKind = iota
	ReadFailed
	HashFailed
	DeleteFailed
)

func (k FailureKind) String() string {
	switch k {
	case StatFailed:
		return "stat"
	case ReadFailed:
		return "read"
	case HashFailed:
		return "hash"
	case DeleteFailed:
		return "delete"
	default:
		return "unknown"
	}
}

// Skip records a file that failed at some stage. Skipped files are excluded
// from all later stages and never appear in a duplicate group.
type Skip struct {
	Path string
	Kind FailureKind
	Err  error
}

// Group is a set of candidates sharing one content digest. Invariant:
// at least two members, all of identical size, members sorted by path.
type Group struct {
	Digest  string
	Size    int64
	Members []Candidate
}

// Paths returns the member paths in group order.
func (g Group) Paths() []string {
	paths := make([]string, len(g.Members))
	for i, m := range g.Members {
		paths[i] = m.Path
	}
	return paths
}

// WastedBytes is the space reclaimable by keeping a single member.
func (g Group) WastedBytes() int64 {
	return g.Size * int64(len(g.Members)-1)
}
