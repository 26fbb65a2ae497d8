package components

import (
	"fmt"
	"log/slog"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/coupon"
	"commerce-core/internal/domain/money"
	"commerce-core/internal/domain/order"
	"commerce-core/internal/pkg/config"
	"commerce-core/internal/usecase"
	"commerce-core/internal/usecase/commands"
	"commerce-core/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewPricingEngine,
	fx.Annotate(
		order.NewULIDNumbers,
		fx.As(new(order.NumberGenerator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartCommands,
		commands.NewCheckoutCommands,
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCartQueries,
		queries.NewOrderQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPricingEngine(cfg config.Config, logger *slog.Logger) (*cart.Engine, error) {
	p := cfg.Pricing
	taxRate, err := decimal.NewFromString(p.TaxRate)
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_RATE %q: %w", p.TaxRate, err)
	}
	rates := cart.ShippingRates{}
	for method, raw := range map[cart.ShippingMethod]string{
		cart.ShippingStandard:  p.StandardRate,
		cart.ShippingExpress:   p.ExpressRate,
		cart.ShippingOvernight: p.OvernightRate,
	} {
		rate, err := money.ParseDecimal(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid shipping rate for %s %q: %w", method, raw, err)
		}
		rates[method] = rate
	}
	policy := coupon.ParsePolicy(p.FixedCouponPolicy)
	logger.Info("Pricing configured", "tax_rate", taxRate.String(), "fixed_coupon_policy", string(policy))
	return cart.NewEngine(coupon.NewApplier(policy), rates, taxRate), nil
}
