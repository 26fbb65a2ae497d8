package order

import (
	"errors"
	"time"

	"commerce-core/internal/domain/money"

	"github.com/google/uuid"
)

// ReturnWindow is how long after delivery a return may be requested.
const ReturnWindow = 30 * 24 * time.Hour

var (
	ErrNoLines            = errors.New("order requires at least one line")
	ErrLineTotalMismatch  = errors.New("line total does not match unit price times quantity")
	ErrTotalsInconsistent = errors.New("order totals are inconsistent")
	ErrNegativeTotal      = errors.New("order total cannot be negative")
	ErrIllegalTransition  = errors.New("illegal order status transition")
	ErrNotCancellable     = errors.New("order can no longer be cancelled")
	ErrNotReturnable      = errors.New("order is not eligible for return")
	ErrMissingNumber      = errors.New("order number is required")
)

type Timestamps struct {
	ConfirmedAt  *time.Time
	ProcessingAt *time.Time
	ShippedAt    *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
	ReturnedAt   *time.Time
}

func (t *Timestamps) stamp(s Status, at time.Time) {
	switch s {
	case StatusConfirmed:
		t.ConfirmedAt = &at
	case StatusProcessing:
		t.ProcessingAt = &at
	case StatusShipped:
		t.ShippedAt = &at
	case StatusDelivered:
		t.DeliveredAt = &at
	case StatusCancelled:
		t.CancelledAt = &at
	case StatusReturned:
		t.ReturnedAt = &at
	}
}

type Gift struct {
	IsGift  bool
	Message string
}

type Params struct {
	Number          string
	UserID          uuid.UUID
	Lines           []Line
	ShippingAddress Address
	BillingAddress  Address
	Payment         Payment
	Totals          Totals
	ShippingMethod  string
	CouponCode      string
	Notes           string
	Gift            Gift
}

type Order struct {
	id              uuid.UUID
	number          string
	userID          uuid.UUID
	lines           []Line
	shippingAddress Address
	billingAddress  Address
	payment         Payment
	totals          Totals
	shippingMethod  string
	couponCode      string
	status          Status
	timestamps      Timestamps
	trackingNumber  string
	notes           string
	cancelReason    string
	gift            Gift
	createdAt       time.Time
	updatedAt       time.Time
}

// New validates the snapshot and creates a pending order.
func New(p Params, now time.Time) (*Order, error) {
	if p.Number == "" {
		return nil, ErrMissingNumber
	}
	if len(p.Lines) == 0 {
		return nil, ErrNoLines
	}
	subtotal := money.Zero()
	for _, l := range p.Lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if l.UnitPrice.Mul(l.Quantity) != l.LineTotal {
			return nil, ErrLineTotalMismatch
		}
		subtotal = subtotal.Add(l.LineTotal)
	}
	if subtotal != p.Totals.Subtotal || !p.Totals.Consistent() {
		return nil, ErrTotalsInconsistent
	}
	if p.Totals.Total.IsNegative() {
		return nil, ErrNegativeTotal
	}
	if err := p.ShippingAddress.Validate(); err != nil {
		return nil, err
	}
	if err := p.BillingAddress.Validate(); err != nil {
		return nil, err
	}
	if err := p.Payment.Validate(); err != nil {
		return nil, err
	}
	if p.Payment.Status == "" {
		p.Payment.Status = PaymentAuthorized
	}

	lines := make([]Line, len(p.Lines))
	copy(lines, p.Lines)

	return &Order{
		id:              uuid.New(),
		number:          p.Number,
		userID:          p.UserID,
		lines:           lines,
		shippingAddress: p.ShippingAddress,
		billingAddress:  p.BillingAddress,
		payment:         p.Payment,
		totals:          p.Totals,
		shippingMethod:  p.ShippingMethod,
		couponCode:      p.CouponCode,
		status:          StatusPending,
		notes:           p.Notes,
		gift:            p.Gift,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

type ReconstructParams struct {
	ID             uuid.UUID
	Params         Params
	Status         Status
	Timestamps     Timestamps
	TrackingNumber string
	CancelReason   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func Reconstruct(r ReconstructParams) *Order {
	return &Order{
		id:              r.ID,
		number:          r.Params.Number,
		userID:          r.Params.UserID,
		lines:           r.Params.Lines,
		shippingAddress: r.Params.ShippingAddress,
		billingAddress:  r.Params.BillingAddress,
		payment:         r.Params.Payment,
		totals:          r.Params.Totals,
		shippingMethod:  r.Params.ShippingMethod,
		couponCode:      r.Params.CouponCode,
		status:          r.Status,
		timestamps:      r.Timestamps,
		trackingNumber:  r.TrackingNumber,
		notes:           r.Params.Notes,
		cancelReason:    r.CancelReason,
		gift:            r.Params.Gift,
		createdAt:       r.CreatedAt,
		updatedAt:       r.UpdatedAt,
	}
}

func (o *Order) ID() uuid.UUID            { return o.id }
func (o *Order) Number() string           { return o.number }
func (o *Order) UserID() uuid.UUID        { return o.userID }
func (o *Order) ShippingAddress() Address { return o.shippingAddress }
func (o *Order) BillingAddress() Address  { return o.billingAddress }
func (o *Order) Payment() Payment         { return o.payment }
func (o *Order) Totals() Totals           { return o.totals }
func (o *Order) ShippingMethod() string   { return o.shippingMethod }
func (o *Order) CouponCode() string       { return o.couponCode }
func (o *Order) Status() Status           { return o.status }
func (o *Order) Timestamps() Timestamps   { return o.timestamps }
func (o *Order) TrackingNumber() string   { return o.trackingNumber }
func (o *Order) Notes() string            { return o.notes }
func (o *Order) CancelReason() string     { return o.cancelReason }
func (o *Order) Gift() Gift               { return o.gift }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
func (o *Order) UpdatedAt() time.Time     { return o.updatedAt }

func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// UpdateStatus moves the order and stamps the status timestamp. Re-entering
// the current status re-stamps it.
func (o *Order) UpdateStatus(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !o.status.CanTransitionTo(next) {
		return ErrIllegalTransition
	}
	o.status = next
	o.timestamps.stamp(next, now)
	o.updatedAt = now
	return nil
}

func (o *Order) CanBeCancelled() bool {
	return o.status == StatusPending || o.status == StatusConfirmed
}

func (o *Order) CanBeReturned(now time.Time) bool {
	if o.status != StatusDelivered || o.timestamps.DeliveredAt == nil {
		return false
	}
	return now.Sub(*o.timestamps.DeliveredAt) <= ReturnWindow
}

func (o *Order) Cancel(reason string, now time.Time) error {
	if !o.CanBeCancelled() {
		return ErrNotCancellable
	}
	o.cancelReason = reason
	return o.UpdateStatus(StatusCancelled, now)
}

func (o *Order) Return(now time.Time) error {
	if !o.CanBeReturned(now) {
		return ErrNotReturnable
	}
	return o.UpdateStatus(StatusReturned, now)
}

func (o *Order) SetTrackingNumber(tn string, now time.Time) {
	o.trackingNumber = tn
	o.updatedAt = now
}
