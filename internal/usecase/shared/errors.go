package shared

import (
	"strconv"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errs.New("not found")
	ErrCartNotFound      = errs.New("cart not found")
	ErrOrderNotFound     = errs.New("order not found")
	ErrProductNotFound   = errs.New("product not found")
	ErrValidation        = errs.New("validation error")
	ErrInsufficientStock = errs.New("insufficient stock")
	ErrConflict          = errs.New("conflict")
	ErrPartialFailure    = errs.New("partial failure")
	ErrEmptyCart         = errs.New("cart is empty")
	ErrForbidden         = errs.New("forbidden")
)

// NotFound marks err with both the specific sentinel and ErrNotFound.
func NotFound(err, specific error) error {
	return errs.Mark(errs.Mark(err, specific), ErrNotFound)
}

func Validation(err error) error {
	return errs.Mark(err, ErrValidation)
}

// StockError enumerates every offending product so clients can fix all lines at once.
type StockError struct {
	Issues []cart.StockIssue
}

func (e *StockError) Error() string {
	return "insufficient stock for " + strconv.Itoa(len(e.Issues)) + " product(s)"
}

func NewStockError(issues []cart.StockIssue) error {
	return errs.Mark(&StockError{Issues: issues}, ErrInsufficientStock)
}

// SingleStockIssue is used when the conditional decrement loses a race after validation passed.
func SingleStockIssue(productID uuid.UUID, name string, requested, available int) error {
	return NewStockError([]cart.StockIssue{{
		ProductID: productID,
		Name:      name,
		Requested: requested,
		Available: available,
	}})
}
