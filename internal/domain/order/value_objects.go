package order

import (
	"errors"
	"strings"

	"commerce-core/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidAddress = errors.New("address requires line1, city, postal code and country")
	ErrInvalidPayment = errors.New("payment method is required")
	ErrInvalidLine    = errors.New("order line requires a product and a positive quantity")
)

type Address struct {
	FullName   string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
}

func (a Address) Validate() error {
	if strings.TrimSpace(a.Line1) == "" ||
		strings.TrimSpace(a.City) == "" ||
		strings.TrimSpace(a.PostalCode) == "" ||
		strings.TrimSpace(a.Country) == "" {
		return ErrInvalidAddress
	}
	return nil
}

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentAuthorized PaymentStatus = "authorized"
	PaymentPaid       PaymentStatus = "paid"
	PaymentRefunded   PaymentStatus = "refunded"
)

// Payment is the pre-validated descriptor supplied by the payment collaborator.
type Payment struct {
	Method        string
	Status        PaymentStatus
	TransactionID string
}

func (p Payment) Validate() error {
	if strings.TrimSpace(p.Method) == "" {
		return ErrInvalidPayment
	}
	return nil
}

type VariantSnapshot struct {
	Name            string
	Value           string
	PriceAdjustment money.Money
}

// Line is frozen at order creation and never re-derived from the catalog.
type Line struct {
	ProductID uuid.UUID
	Name      string
	Image     string
	UnitPrice money.Money
	Quantity  int
	Variant   *VariantSnapshot
	LineTotal money.Money
	// TrackQuantity records whether stock was decremented for this line.
	TrackQuantity bool
}

func (l Line) Validate() error {
	if l.ProductID == uuid.Nil || l.Quantity <= 0 {
		return ErrInvalidLine
	}
	return nil
}

type Totals struct {
	Subtotal     money.Money
	Tax          money.Money
	ShippingCost money.Money
	Discount     money.Money
	Total        money.Money
}

func (t Totals) Consistent() bool {
	return t.Subtotal.Add(t.Tax).Add(t.ShippingCost).Sub(t.Discount) == t.Total
}
