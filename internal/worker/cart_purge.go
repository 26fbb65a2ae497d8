package worker

import (
	"context"
	"log/slog"
	"time"

	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/usecase/shared"
)

type CartPurgeOptions struct {
	Interval time.Duration
	// BatchSize caps the deletes of one transaction; a tick keeps going until a short batch.
	BatchSize int
}

// CartPurger deletes guest carts whose inactivity window has elapsed.
type CartPurger struct {
	log   *slog.Logger
	uow   shared.UnitOfWork
	clock clock.Clock
	opts  CartPurgeOptions
}

func NewCartPurger(log *slog.Logger, uow shared.UnitOfWork, clk clock.Clock, opts CartPurgeOptions) *CartPurger {
	if opts.Interval <= 0 {
		opts.Interval = 10 * time.Minute
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}
	return &CartPurger{log: log, uow: uow, clock: clk, opts: opts}
}

func (p *CartPurger) Run(ctx context.Context) error {
	t := time.NewTicker(p.opts.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info("cart purger stopping")
			return nil
		case <-t.C:
			p.Tick(ctx)
		}
	}
}

// Tick returns the number of carts removed.
func (p *CartPurger) Tick(ctx context.Context) int64 {
	now := p.clock.Now()
	var total int64
	for ctx.Err() == nil {
		var n int64
		err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			n, err = tx.Carts().DeleteExpiredGuests(ctx, now, p.opts.BatchSize)
			return err
		})
		if err != nil {
			p.log.Error("cart purge error", "err", err, "deleted", total)
			return total
		}
		total += n
		if n < int64(p.opts.BatchSize) {
			break
		}
	}
	if total > 0 {
		p.log.Info("expired guest carts purged", "count", total)
	}
	return total
}
