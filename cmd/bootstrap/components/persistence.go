package components

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"commerce-core/internal/infra/db"
	"commerce-core/internal/infra/memstore"
	"commerce-core/internal/infra/outbox"
	"commerce-core/internal/infra/repository"
	sqlc "commerce-core/internal/infra/sqlc/generated"
	"commerce-core/internal/infra/uow"
	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/pkg/config"
	"commerce-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		clock.NewRealClock,
		NewPersistence,
		func(p Persistence) shared.UnitOfWork { return p.UoW },
		func(p Persistence) outbox.Store { return p.Outbox },
	),
)

// Persistence is the storage selected by STORE_DRIVER. Pool is nil for the memory driver.
type Persistence struct {
	UoW    shared.UnitOfWork
	Outbox outbox.Store
	Pool   *pgxpool.Pool
}

func NewPersistence(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (Persistence, error) {
	switch strings.ToLower(cfg.Store.Driver) {
	case DriverMemory:
		logger.Warn("Using the in-memory store; data is lost on restart")
		store := memstore.NewStore(clk)
		return Persistence{UoW: store, Outbox: store}, nil
	case DriverPostgres, "":
		pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
		if err != nil {
			return Persistence{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		q := NewSQLQueries(pool)
		return Persistence{
			UoW:    uow.NewPostgresUoW(pool, q, logger),
			Outbox: repository.NewOutboxStore(q, pool, clk),
			Pool:   pool,
		}, nil
	default:
		return Persistence{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}
