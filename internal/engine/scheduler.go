package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/haggle/internal/config"
	"github.com/donaldgifford/haggle/internal/metrics"
	"github.com/donaldgifford/haggle/internal/store"
	domain "github.com/donaldgifford/haggle/pkg/types"
)

// Scheduled job names.
const (
	JobSuccessRates    = "success_rates"
	JobCachePurge      = "cache_purge"
	JobComparablePrune = "comparable_prune"
)

// staleJobAge is how long a job run may stay "running" before it is
// considered crashed.
const staleJobAge = 2 * time.Hour

// Purger drops expired entries and reports how many were removed.
type Purger interface {
	Purge() int
}

// Scheduler runs periodic maintenance: success-rate refresh, comparable
// cache purge and comparable history pruning.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	store  store.Store
	purger Purger
	log    *slog.Logger
	holder string
	now    func() time.Time

	retention time.Duration
	entries   map[string]cron.EntryID
}

// NewScheduler registers the maintenance jobs. A zero interval disables the
// corresponding job; cache purging also requires a non-nil purger.
func NewScheduler(
	eng *Engine,
	s store.Store,
	purger Purger,
	cfg config.ScheduleConfig,
	log *slog.Logger,
) (*Scheduler, error) {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	sched := &Scheduler{
		cron:      cron.New(),
		engine:    eng,
		store:     s,
		purger:    purger,
		log:       log,
		holder:    fmt.Sprintf("%s-%d", host, os.Getpid()),
		now:       time.Now,
		retention: cfg.ComparableRetention,
		entries:   make(map[string]cron.EntryID),
	}

	if err := sched.add(JobSuccessRates, cfg.SuccessRateInterval, sched.refreshSuccessRates); err != nil {
		return nil, err
	}
	if purger != nil {
		if err := sched.add(JobCachePurge, cfg.CachePurgeInterval, sched.purgeCache); err != nil {
			return nil, err
		}
	}
	if cfg.ComparableRetention > 0 {
		if err := sched.add(JobComparablePrune, cfg.PruneInterval, sched.pruneComparables); err != nil {
			return nil, err
		}
	}

	return sched, nil
}

func (s *Scheduler) add(name string, interval time.Duration, fn func(context.Context) (int, error)) error {
	if interval <= 0 {
		return nil
	}

	id, err := s.cron.AddFunc("@every "+interval.String(), func() {
		ctx := context.Background()
		// Errors are logged and recorded by runJob.
		_ = s.runJob(ctx, name, interval, fn)
		s.SyncNextRunTimestamps()
	})
	if err != nil {
		return fmt.Errorf("scheduling %s: %w", name, err)
	}

	s.entries[name] = id
	return nil
}

// Start recovers crashed job runs and begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.RecoverStaleJobRuns(context.Background())
	s.log.Info("scheduler started", "jobs", len(s.entries))
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// EntryID returns the cron entry for a named job, or zero if it is not
// scheduled.
func (s *Scheduler) EntryID(name string) cron.EntryID {
	return s.entries[name]
}

// RunNow runs a named job immediately, outside the cron schedule.
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	var fn func(context.Context) (int, error)
	switch name {
	case JobSuccessRates:
		fn = s.refreshSuccessRates
	case JobCachePurge:
		if s.purger == nil {
			return fmt.Errorf("job %q: no cache configured", name)
		}
		fn = s.purgeCache
	case JobComparablePrune:
		fn = s.pruneComparables
	default:
		return fmt.Errorf("unknown job %q", name)
	}
	return s.runJob(ctx, name, time.Hour, fn)
}

// SyncNextRunTimestamps publishes each job's next run time as a gauge.
func (s *Scheduler) SyncNextRunTimestamps() {
	for name, id := range s.entries {
		next := s.cron.Entry(id).Next
		if next.IsZero() {
			continue
		}
		metrics.SchedulerNextRunTimestamp.WithLabelValues(name).Set(float64(next.Unix()))
	}
}

// RecoverStaleJobRuns marks runs left in the running state by a crashed
// process as crashed.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleJobRuns(ctx, staleJobAge)
	if err != nil {
		s.log.Warn("recovering stale job runs", "error", err)
		return
	}
	if n > 0 {
		s.log.Info("marked stale job runs as crashed", "count", n)
	}
}

// runJob runs fn under a distributed lock and records the run. When another
// instance holds the lock the job is skipped.
func (s *Scheduler) runJob(
	ctx context.Context,
	name string,
	lockTTL time.Duration,
	fn func(context.Context) (int, error),
) error {
	acquired, err := s.store.AcquireSchedulerLock(ctx, name, s.holder, lockTTL)
	if err != nil {
		s.log.Error("acquiring scheduler lock", "job", name, "error", err)
		return fmt.Errorf("acquiring lock for %s: %w", name, err)
	}
	if !acquired {
		s.log.Debug("job locked by another instance, skipping", "job", name)
		return nil
	}
	defer func() {
		if err := s.store.ReleaseSchedulerLock(context.WithoutCancel(ctx), name, s.holder); err != nil {
			s.log.Warn("releasing scheduler lock", "job", name, "error", err)
		}
	}()

	runID, err := s.store.InsertJobRun(ctx, name)
	if err != nil {
		// Run the job anyway; only its record is lost.
		s.log.Warn("recording job start", "job", name, "error", err)
	}

	s.log.Info("scheduled job starting", "job", name)
	start := time.Now()
	rows, jobErr := fn(ctx)
	elapsed := time.Since(start)

	status, errText := domain.JobStatusSucceeded, ""
	if jobErr != nil {
		status, errText = domain.JobStatusFailed, jobErr.Error()
		s.log.Error("scheduled job failed", "job", name, "error", jobErr, "duration", elapsed)
	} else {
		s.log.Info("scheduled job finished", "job", name, "rows", rows, "duration", elapsed)
	}

	metrics.SchedulerJobRunsTotal.WithLabelValues(name, status).Inc()
	metrics.SchedulerJobDuration.WithLabelValues(name).Observe(elapsed.Seconds())

	if runID != "" {
		if err := s.store.CompleteJobRun(context.WithoutCancel(ctx), runID, status, errText, rows); err != nil {
			s.log.Warn("recording job completion", "job", name, "error", err)
		}
	}

	return jobErr
}

func (s *Scheduler) refreshSuccessRates(ctx context.Context) (int, error) {
	return s.engine.RefreshSuccessRates(ctx)
}

func (s *Scheduler) purgeCache(context.Context) (int, error) {
	return s.purger.Purge(), nil
}

func (s *Scheduler) pruneComparables(ctx context.Context) (int, error) {
	n, err := s.store.PruneComparables(ctx, s.now().Add(-s.retention))
	if err != nil {
		return 0, fmt.Errorf("pruning comparables: %w", err)
	}
	return n, nil
}
