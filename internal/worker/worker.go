// Package worker forks a single unit of work and joins it.
package worker

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// SpawnAndJoin starts one goroutine holding a copy of captured and blocks
// until it returns. The worker result is discarded.
func SpawnAndJoin(ctx context.Context, captured int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Debug().
			Str("unit", "worker").
			Int("captured", captured).
			Bool("cancelled", gctx.Err() != nil).
			Msg("worker running")
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	log.Debug().Str("unit", "worker").Msg("worker joined")
	return nil
}
