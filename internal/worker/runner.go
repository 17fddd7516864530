package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.uber.org/fx"
)

// Job is one tick of a periodic worker.
type Job interface {
	Name() string
	RunOnce(ctx context.Context) error
}

// Runner ticks a Job until stopped. A failing tick is logged and the next tick runs as usual.
type Runner struct {
	job      Job
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRunner(job Job, interval time.Duration, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		job:      job,
		interval: interval,
		logger:   logger.With("worker", job.Name()),
	}
}

func (r *Runner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)
	go r.loop(ctx)
}

func (r *Runner) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *Runner) loop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("worker started", "interval", r.interval.String())
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("worker stopped")
			return
		case <-ticker.C:
			if err := r.job.RunOnce(ctx); err != nil && ctx.Err() == nil {
				r.logger.Error("worker tick failed", "error", err.Error())
			}
		}
	}
}

// Attach binds the runner to the fx lifecycle.
func (r *Runner) Attach(lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			r.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			r.Stop()
			return nil
		},
	})
}
