package bootstrap

import (
	"context"
	"log/slog"
	"sync"

	"commerce-core/internal/infra/outbox"
	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/pkg/config"
	"commerce-core/internal/usecase/shared"
	"commerce-core/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewProducer,
		NewRelay,
		NewCartPurger,
	),
	fx.Invoke(
		runRelay,
		runCartPurger,
	),
)

func NewProducer(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) outbox.Producer {
	if !cfg.Kafka.Enabled() {
		logger.Warn("Kafka disabled; outbox events are logged instead of produced")
		return outbox.NewLogProducer(logger)
	}

	w := outbox.NewKafkaWriter(cfg.Kafka.Brokers)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return w.Close()
		},
	})
	return w
}

func NewRelay(cfg config.Config, logger *slog.Logger, store outbox.Store, producer outbox.Producer) *outbox.Relay {
	dispatcher := outbox.NewDispatcher(logger, producer, cfg.Kafka.Topic)
	return outbox.NewRelay(logger, store, dispatcher, cfg.Kafka.RelayID, outbox.RelayOptions{
		BatchSize:   cfg.Kafka.RelayBatch,
		Interval:    cfg.Kafka.RelayInterval,
		MaxAttempts: cfg.Kafka.MaxAttempts,
	})
}

func NewCartPurger(cfg config.Config, logger *slog.Logger, uow shared.UnitOfWork, clk clock.Clock) *worker.CartPurger {
	return worker.NewCartPurger(logger, uow, clk, worker.CartPurgeOptions{
		Interval:  cfg.Cart.PurgeInterval,
		BatchSize: cfg.Cart.PurgeBatch,
	})
}

type runner interface {
	Run(ctx context.Context) error
}

// background ties a ticker loop to the fx lifecycle.
func background(lc fx.Lifecycle, logger *slog.Logger, name string, r runner) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := r.Run(ctx); err != nil {
					logger.Error("background worker exited", "worker", name, "error", err)
				}
			}()
			logger.Info("background worker started", "worker", name)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			wg.Wait()
			return nil
		},
	})
}

func runRelay(lc fx.Lifecycle, logger *slog.Logger, relay *outbox.Relay) {
	background(lc, logger, "outbox-relay", relay)
}

func runCartPurger(lc fx.Lifecycle, logger *slog.Logger, purger *worker.CartPurger) {
	background(lc, logger, "cart-purger", purger)
}
