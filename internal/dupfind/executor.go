package dupfind

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// RetentionPolicy selects which member of a duplicate group survives
// deletion.
type RetentionPolicy string

const (
	// KeepFirst retains the first member in group order (lexicographic by
	// path). This is the default: it needs no extra metadata and is stable
	// across runs.
	KeepFirst RetentionPolicy = "first"

	// KeepNewest retains the member with the most recent modification time.
	KeepNewest RetentionPolicy = "newest"
)

// ParseRetentionPolicy validates a user-supplied policy name.
func ParseRetentionPolicy(s string) (RetentionPolicy, error) {
	switch RetentionPolicy(s) {
	case KeepFirst, KeepNewest:
		return RetentionPolicy(s), nil
	case "":
		return KeepFirst, nil
	default:
		return "", fmt.Errorf("unknown retention policy %q (want first or newest)", s)
	}
}

// keepIndex returns the index of the member the policy retains.
func (p RetentionPolicy) keepIndex(g Group) int {
	if p != KeepNewest {
		return 0
	}
	keep := 0
	for i, m := range g.Members {
		if m.Mtime > g.Members[keep].Mtime {
			keep = i
		}
	}
	return keep
}

// DeleteSummary reports the outcome of a batch delete.
type DeleteSummary struct {
	GroupsProcessed int
	FilesDeleted    int
	BytesReclaimed  int64
	Failures        []Skip
}

// DeleteDuplicates removes every member of each group except the one
// retained by the policy. A failed deletion is recorded and the batch
// continues; the aggregated error is informational and never reflects a
// partial abort.
func DeleteDuplicates(groups []Group, policy RetentionPolicy, log *logrus.Logger) (DeleteSummary, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	var summary DeleteSummary
	var errs *multierror.Error
	for _, g := range groups {
		keep := policy.keepIndex(g)
		for i, member := range g.Members {
			if i == keep {
				continue
			}
			if err := os.Remove(member.Path); err != nil {
				log.WithError(err).WithField("path", member.Path).Warn("could not delete duplicate")
				summary.Failures = append(summary.Failures, Skip{Path: member.Path, Kind: DeleteFailed, Err: err})
				errs = multierror.Append(errs, fmt.Errorf("delete %s: %w", member.Path, err))
				continue
			}
			log.WithField("path", member.Path).Info("deleted duplicate")
			summary.FilesDeleted++
			summary.BytesReclaimed += g.Size
		}
		summary.GroupsProcessed++
	}
	return summary, errs.ErrorOrNil()
}
