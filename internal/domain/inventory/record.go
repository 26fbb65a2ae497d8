package inventory

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrNegativeStock    = errors.New("stock quantity cannot be negative")
	ErrInvalidThreshold = errors.New("low stock threshold cannot be negative")
	ErrInvalidDirection = errors.New("stock delta direction must be increase or decrease")
)

// Record is the inventory slice of a catalog product.
type Record struct {
	productID         uuid.UUID
	trackQuantity     bool
	quantity          int
	lowStockThreshold int
	allowBackorders   bool
}

func NewRecord(productID uuid.UUID, trackQuantity bool, quantity, lowStockThreshold int, allowBackorders bool) (Record, error) {
	if quantity < 0 {
		return Record{}, ErrNegativeStock
	}
	if lowStockThreshold < 0 {
		return Record{}, ErrInvalidThreshold
	}
	return Record{
		productID:         productID,
		trackQuantity:     trackQuantity,
		quantity:          quantity,
		lowStockThreshold: lowStockThreshold,
		allowBackorders:   allowBackorders,
	}, nil
}

func ReconstructRecord(productID uuid.UUID, trackQuantity bool, quantity, lowStockThreshold int, allowBackorders bool) Record {
	return Record{
		productID:         productID,
		trackQuantity:     trackQuantity,
		quantity:          quantity,
		lowStockThreshold: lowStockThreshold,
		allowBackorders:   allowBackorders,
	}
}

func (r Record) ProductID() uuid.UUID   { return r.productID }
func (r Record) TrackQuantity() bool    { return r.trackQuantity }
func (r Record) Quantity() int          { return r.quantity }
func (r Record) LowStockThreshold() int { return r.lowStockThreshold }
func (r Record) AllowBackorders() bool  { return r.allowBackorders }

func (r Record) IsLowStock() bool {
	return r.trackQuantity && r.quantity <= r.lowStockThreshold
}
