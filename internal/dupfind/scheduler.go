package dupfind

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/gofindup/findup/internal/hasher"
	"github.com/gofindup/findup/internal/progress"
)

// maxWorkers caps parallelism so constrained hosts are not oversubscribed
// with blocked reads.
const maxWorkers = 8

// hashResult pairs a candidate with its digest, or with the error that
// prevented hashing it.
type hashResult struct {
	Candidate Candidate
	Digest    string
	Err       error
}

func defaultWorkers() int {
	return min(runtime.GOMAXPROCS(0), maxWorkers)
}

// hashAll computes digests for all candidates using a bounded worker pool.
// Each worker writes into its own result slot, so no synchronization is
// needed beyond the pool itself. Per-file failures land in the result's Err
// field and never abort the batch; only context cancellation does. With
// workers <= 1 the same per-file logic runs strictly sequentially.
func hashAll(ctx context.Context, algo hasher.Algorithm, candidates []Candidate, workers int, prog progress.BarProgressTracker) ([]hashResult, error) {
	if workers <= 0 {
		workers = defaultWorkers()
	}

	results := make([]hashResult, len(candidates))
	prog.SetTotal(int64(len(candidates)))

	if workers == 1 {
		for i, candidate := range candidates {
			results[i] = hashOne(ctx, algo, candidate)
			if err := cancelled(results[i].Err); err != nil {
				return nil, err
			}
			prog.SetDone(i + 1)
		}
		prog.MarkFinished()
		return results, nil
	}

	var done atomic.Int64
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, candidate := range candidates {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = hashOne(ctx, algo, candidate)
			if err := cancelled(results[i].Err); err != nil {
				return err
			}
			prog.SetDone(int(done.Add(1)))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	prog.MarkFinished()
	return results, nil
}

// cancelled filters context errors out of per-file failures: a cancelled
// hash aborts the batch rather than being recorded as a skipped file.
func cancelled(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

func hashOne(ctx context.Context, algo hasher.Algorithm, candidate Candidate) hashResult {
	digest, err := algo.File(ctx, candidate.Path)
	if err != nil {
		return hashResult{Candidate: candidate, Err: err}
	}
	return hashResult{Candidate: candidate, Digest: digest}
}
