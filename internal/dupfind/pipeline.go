package dupfind

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/gofindup/findup/internal/fsscan"
	"github.com/gofindup/findup/internal/hasher"
	"github.com/gofindup/findup/internal/progress"
)

// ErrInvalidRoot is returned when the scan root does not exist or is not a
// directory. This is the only fatal condition of a scan; everything else
// degrades to per-file skips.
var ErrInvalidRoot = errors.New("scan root is not a directory")

// Options configures a scan. The zero value is not usable; Root is
// required.
type Options struct {
	// Root is the directory to scan.
	Root string

	// Algorithm selects the content digest; empty means hasher.DefaultAlgorithm.
	Algorithm hasher.Algorithm

	// Workers bounds hashing parallelism. 0 means min(GOMAXPROCS, 8);
	// 1 forces sequential hashing.
	Workers int

	// Exclude lists directory names to prune. Nil means fsscan.DefaultExcludes;
	// an empty non-nil slice disables exclusion.
	Exclude []string

	// Progress receives hashing progress. Nil means no progress reporting.
	Progress progress.BarProgressTracker

	// CollectProgress receives collection-walk progress, which has no
	// known total. Nil means no progress reporting.
	CollectProgress progress.SpinnerProgressTracker

	// Log receives stage-level diagnostics. Nil means the logrus standard logger.
	Log *logrus.Logger
}

// Stats summarizes the work a scan performed.
type Stats struct {
	FilesSeen        int
	SizeGroups       int
	CandidatesHashed int
	DuplicateGroups  int
	DuplicateFiles   int
	WastedBytes      int64
}

// Result is the outcome of one scan. It is owned by the caller; the
// pipeline does not retain or mutate it.
type Result struct {
	Root      string
	Algorithm hasher.Algorithm
	Groups    []Group
	Skipped   []Skip
	Stats     Stats
}

// Find runs the full pipeline: walk, size-group, hash, aggregate.
// Running it twice over an unmodified tree yields identical groups.
func Find(ctx context.Context, opts Options) (*Result, error) {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	prog := opts.Progress
	if prog == nil {
		prog = progress.NoopBarProgressTracker{}
	}
	collectProg := opts.CollectProgress
	if collectProg == nil {
		collectProg = progress.NoopSpinnerProgressTracker{}
	}
	algo := opts.Algorithm
	if algo == "" {
		algo = hasher.DefaultAlgorithm
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoot, opts.Root)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoot, opts.Root)
	}

	result := &Result{Root: root, Algorithm: algo}

	// Stage 1: collect candidates. Walk errors become skips, never fatal.
	collectProg.SetMessage("collecting files")
	var candidates []Candidate
	for metadata := range fsscan.WalkDirectory(root, fsscan.ExcludeSet(opts.Exclude)) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if metadata.Error != nil {
			log.WithError(metadata.Error).WithField("path", metadata.Path).Debug("skipping unreadable path")
			if metadata.Path != "" {
				result.Skipped = append(result.Skipped, Skip{Path: metadata.Path, Kind: StatFailed, Err: metadata.Error})
			}
			continue
		}
		candidates = append(candidates, Candidate{Path: metadata.Path, Size: metadata.Size, Mtime: metadata.Mtime})
		collectProg.SetDone(len(candidates))
	}
	collectProg.MarkFinished()
	result.Stats.FilesSeen = len(candidates)

	// Stage 2: size prefilter.
	sizeGroups := groupBySize(candidates)
	toHash := flattenGroups(sizeGroups)
	result.Stats.SizeGroups = len(sizeGroups)
	result.Stats.CandidatesHashed = len(toHash)
	log.WithFields(logrus.Fields{
		"files":      len(candidates),
		"candidates": len(toHash),
	}).Debug("size prefilter complete")

	// Stage 3: parallel hashing.
	prog.SetMessage("hashing candidate files")
	hashed, err := hashAll(ctx, algo, toHash, opts.Workers, prog)
	if err != nil {
		return nil, err
	}

	// Stage 4: aggregate by digest.
	groups, skipped := aggregate(hashed)
	result.Groups = groups
	result.Skipped = append(result.Skipped, skipped...)
	result.Stats.DuplicateGroups = len(groups)
	for _, g := range groups {
		result.Stats.DuplicateFiles += len(g.Members) - 1
		result.Stats.WastedBytes += g.WastedBytes()
	}
	return result, nil
}
