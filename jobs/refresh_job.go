package jobs

import (
	"context"
	"sync"
	"time"

	"salon-site-server/logx"
)

// Reloader is anything whose content can be fetched again, like a catalog store
type Reloader interface {
	Reload(ctx context.Context) error
	Source() string
}

// Cleaner drops idle per-client state, like the rate limiter
type Cleaner interface {
	Cleanup(maxIdle time.Duration) int
}

// RefreshJob periodically reloads catalog stores and prunes idle rate limiters
type RefreshJob struct {
	interval time.Duration
	timeout  time.Duration
	maxIdle  time.Duration
	stores   []Reloader
	cleaner  Cleaner

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewRefreshJob creates a job ticking every interval. cleaner may be nil.
func NewRefreshJob(interval time.Duration, cleaner Cleaner, stores ...Reloader) *RefreshJob {
	return &RefreshJob{
		interval: interval,
		timeout:  30 * time.Second,
		maxIdle:  time.Hour,
		stores:   stores,
		cleaner:  cleaner,
		stopChan: make(chan struct{}),
	}
}

// Start begins the refresh job
func (j *RefreshJob) Start() {
	j.wg.Add(1)
	go j.run()
	logx.Info().Dur("interval", j.interval).Int("stores", len(j.stores)).Msg("🚀 Refresh job started")
}

// Stop stops the job and waits for a running tick to finish. It is safe to call twice.
func (j *RefreshJob) Stop() {
	j.stopOnce.Do(func() {
		close(j.stopChan)
		j.wg.Wait()
		logx.Info().Msg("🛑 Refresh job stopped")
	})
}

func (j *RefreshJob) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.tick()
		case <-j.stopChan:
			return
		}
	}
}

// tick reloads every store once and prunes idle limiters
func (j *RefreshJob) tick() {
	for _, store := range j.stores {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		if err := store.Reload(ctx); err != nil {
			logx.Warn().Err(err).Str("source", store.Source()).Msg("⏰ Scheduled catalog refresh failed")
		}
		cancel()
	}

	if j.cleaner != nil {
		if removed := j.cleaner.Cleanup(j.maxIdle); removed > 0 {
			logx.Debug().Int("removed", removed).Msg("🧹 Pruned idle rate limiters")
		}
	}
}
