//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/identity"
	"commerce-core/internal/domain/order"
	"commerce-core/internal/infra/cache"
	"commerce-core/internal/infra/idempotency"
	"commerce-core/internal/infra/memstore"
	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/usecase/commands"
	"commerce-core/internal/usecase/queries"
	"commerce-core/internal/usecase/shared"
	"commerce-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	store       *memstore.Store
	clock       *clock.MockClock
	idempotency *idempotency.MemoryStore
	carts       commands.CartCommands
	checkout    commands.CheckoutCommands
	orders      commands.OrderCommands
	cartQ       queries.CartQueries
	orderQ      queries.OrderQueries
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clk := clock.NewMockClock(now)
	store := memstore.NewStore(clk)
	idem := idempotency.NewMemoryStore(clk, time.Hour)
	engine := cart.NewDefaultEngine()
	noop := cache.NewNoopCartCache()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		store:       store,
		clock:       clk,
		idempotency: idem,
		carts:       commands.NewCartCommands(store, engine, noop, clk, logger),
		checkout:    commands.NewCheckoutCommands(store, engine, order.NewULIDNumbers(), idem, noop, clk, logger),
		orders:      commands.NewOrderCommands(store, clk, logger),
		cartQ:       queries.NewCartQueries(store, engine, noop, clk, logger),
		orderQ:      queries.NewOrderQueries(store),
	}
}

func (f *fixture) product(mutate func(*builder.ProductBuilder)) cart.ProductSnapshot {
	b := builder.NewProductBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	p := b.BuildSnapshot()
	f.store.PutProduct(p)
	return p
}

func (f *fixture) stock(t *testing.T, id uuid.UUID) int {
	t.Helper()
	p, ok := f.store.Product(id)
	require.True(t, ok)
	return p.Inventory.Quantity()
}

func (f *fixture) add(t *testing.T, owner cart.Owner, productID uuid.UUID, qty int) *queries.CartView {
	t.Helper()
	view, err := f.carts.AddItem(context.Background(), owner, commands.AddItemInput{ProductID: productID, Quantity: qty})
	require.NoError(t, err)
	return view
}

func (f *fixture) eventTypes() []string {
	var out []string
	for _, e := range f.store.Events() {
		out = append(out, e.Type)
	}
	return out
}

func checkoutInput() commands.CheckoutInput {
	return commands.CheckoutInput{
		ShippingAddress: order.Address{
			FullName:   "Test Buyer",
			Line1:      "1 Market Street",
			City:       "Springfield",
			PostalCode: "12345",
			Country:    "US",
		},
		Payment: order.Payment{Method: "card", TransactionID: "txn_1"},
	}
}

func customer(id uuid.UUID) shared.Actor {
	return shared.Actor{UserID: id, Role: identity.RoleCustomer}
}

func operator() shared.Actor {
	return shared.Actor{UserID: uuid.New(), Role: identity.RoleOperator}
}
