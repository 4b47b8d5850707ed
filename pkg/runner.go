package pkg

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/bagfill"
	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/config"
	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/mino"
	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/store"
)

// Runner enumerates several bag sizes. Each size is an independent search, so
// sizes run concurrently up to Workers at a time.
type Runner struct {
	Store   store.Store
	Log     logrus.FieldLogger
	Workers int

	// Pieces restricts the catalogue. Restricted runs bypass the store, whose
	// entries always cover the whole catalogue.
	Pieces []mino.Canonical
}

// Run returns one result set per size, in the order of sizes.
func (r *Runner) Run(ctx context.Context, sizes []config.Size) ([]*bagfill.ResultSet, error) {
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	var (
		results = make([]*bagfill.ResultSet, len(sizes))
		errs    = make([]error, len(sizes))
		sem     = make(chan struct{}, workers)
		wg      sync.WaitGroup
	)
	for i, size := range sizes {
		wg.Add(1)
		go func(i int, size config.Size) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			results[i], errs[i] = r.generate(ctx, size)
		}(i, size)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (r *Runner) generate(ctx context.Context, size config.Size) (*bagfill.ResultSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := r.Log.WithField("size", size.String())
	cacheable := r.Store != nil && len(r.Pieces) == 0

	if cacheable {
		rs, ok, err := r.Store.Get(ctx, size.Width, size.Height)
		if err != nil {
			log.WithError(err).Warn("cache read failed")
		} else if ok {
			log.Debug("cache hit")
			return rs, nil
		}
	}

	opts := []bagfill.Option{bagfill.WithLogger(log)}
	if len(r.Pieces) > 0 {
		opts = append(opts, bagfill.WithPieces(mino.Only(r.Pieces...)))
	}

	start := time.Now()
	rs, err := bagfill.Generate(size.Width, size.Height, opts...)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"combinations": rs.Len(),
		"elapsed":      time.Since(start).String(),
	}).Info("generated bag")

	if cacheable {
		if err := r.Store.Put(ctx, rs); err != nil {
			log.WithError(err).Warn("cache write failed")
		}
	}
	return rs, nil
}
