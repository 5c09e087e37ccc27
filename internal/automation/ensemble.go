package automation

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/dialnav/internal/config"
)

// Job pairs a scenario with the config it runs under.
type Job struct {
	Config   *config.Config
	Scenario *Scenario
}

// RunAll replays every job on its own mode, at most workers at a time
// (unlimited when workers <= 0). Traces come back in job order. The first
// error cancels the rest.
func RunAll(ctx context.Context, jobs []Job, workers int, log *slog.Logger) ([]*Trace, error) {
	traces := make([]*Trace, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, job := range jobs {
		g.Go(func() error {
			trace, err := Run(gCtx, job.Config, job.Scenario, log.With("scenario", job.Scenario.Name))
			if err != nil {
				return err
			}
			traces[i] = trace
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return traces, nil
}
