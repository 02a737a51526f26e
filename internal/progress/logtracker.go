package progress

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogSpinnerTracker reports totalless progress through a logrus logger,
// throttled so large walks do not flood the output.
type LogSpinnerTracker struct {
	Log      *logrus.Logger
	Interval time.Duration

	mu      sync.Mutex
	message string
	done    int
	lastLog time.Time
}

var _ SpinnerProgressTracker = (*LogSpinnerTracker)(nil)

func NewLogSpinnerTracker(log *logrus.Logger) *LogSpinnerTracker {
	return &LogSpinnerTracker{Log: log, Interval: time.Second}
}

func (t *LogSpinnerTracker) SetMessage(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.message = msg
}

func (t *LogSpinnerTracker) SetDone(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done = n
	now := time.Now()
	if now.Sub(t.lastLog) < t.Interval {
		return
	}
	t.lastLog = now
	t.Log.WithField("done", t.done).Info(t.message)
}

func (t *LogSpinnerTracker) SetError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Log.WithError(err).Warn(t.message)
}

func (t *LogSpinnerTracker) MarkFinished() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Log.WithField("done", t.done).Debug(t.message + " finished")
}

// LogBarTracker reports progress through a logrus logger. It throttles
// updates so large scans do not flood the output.
type LogBarTracker struct {
	Log      *logrus.Logger
	Interval time.Duration

	mu      sync.Mutex
	message string
	total   int64
	done    int
	lastLog time.Time
}

var _ BarProgressTracker = (*LogBarTracker)(nil)

func NewLogBarTracker(log *logrus.Logger) *LogBarTracker {
	return &LogBarTracker{Log: log, Interval: time.Second}
}

func (t *LogBarTracker) SetMessage(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.message = msg
}

func (t *LogBarTracker) SetTotal(total int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.total = total
}

func (t *LogBarTracker) SetDone(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done = n
	now := time.Now()
	if now.Sub(t.lastLog) < t.Interval {
		return
	}
	t.lastLog = now
	t.Log.WithFields(logrus.Fields{
		"done":  t.done,
		"total": t.total,
	}).Info(t.message)
}

func (t *LogBarTracker) SetError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Log.WithError(err).Warn(t.message)
}

func (t *LogBarTracker) MarkFinished() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Log.WithFields(logrus.Fields{
		"done":  t.done,
		"total": t.total,
	}).Debug(t.message + " finished")
}
