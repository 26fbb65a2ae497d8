package commands

import (
	"errors"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/order"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/shared"
)

// domainErr maps entity rule violations onto the usecase taxonomy.
func domainErr(err error) error {
	switch {
	case errors.Is(err, cart.ErrLineNotFound):
		return errs.Mark(err, shared.ErrNotFound)
	case errors.Is(err, order.ErrNotCancellable),
		errors.Is(err, order.ErrNotReturnable):
		return errs.Mark(err, shared.ErrConflict)
	default:
		return shared.Validation(err)
	}
}
