package cart

import (
	"errors"
	"strings"

	"commerce-core/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidOwner          = errors.New("cart owner is required")
	ErrInvalidShippingMethod = errors.New("shipping method must be standard, express or overnight")
	ErrInvalidVariant        = errors.New("variant name and value are required")
)

type OwnerKind string

const (
	OwnerUser  OwnerKind = "user"
	OwnerGuest OwnerKind = "guest"
)

// Owner is either an authenticated user or an anonymous guest session.
type Owner struct {
	kind OwnerKind
	id   string
}

func UserOwner(userID uuid.UUID) Owner {
	return Owner{kind: OwnerUser, id: userID.String()}
}

func GuestOwner(sessionID string) (Owner, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" || len(sessionID) > 128 {
		return Owner{}, ErrInvalidOwner
	}
	return Owner{kind: OwnerGuest, id: sessionID}, nil
}

// ParseOwnerKey is the inverse of Owner.Key.
func ParseOwnerKey(key string) (Owner, error) {
	kind, id, ok := strings.Cut(key, ":")
	if !ok || id == "" {
		return Owner{}, ErrInvalidOwner
	}
	switch OwnerKind(kind) {
	case OwnerUser:
		uid, err := uuid.Parse(id)
		if err != nil {
			return Owner{}, ErrInvalidOwner
		}
		return UserOwner(uid), nil
	case OwnerGuest:
		return GuestOwner(id)
	default:
		return Owner{}, ErrInvalidOwner
	}
}

func (o Owner) Kind() OwnerKind { return o.kind }
func (o Owner) ID() string      { return o.id }
func (o Owner) IsGuest() bool   { return o.kind == OwnerGuest }
func (o Owner) IsZero() bool    { return o.id == "" }
func (o Owner) Key() string     { return string(o.kind) + ":" + o.id }

// UserID returns the owning user for user carts.
func (o Owner) UserID() (uuid.UUID, bool) {
	if o.kind != OwnerUser {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(o.id)
	return id, err == nil
}

// Variant is a selected option of a product, e.g. size=L.
type Variant struct {
	Name            string
	Value           string
	PriceAdjustment money.Money
}

func NewVariant(name, value string, adjustment money.Money) (*Variant, error) {
	name, value = strings.TrimSpace(name), strings.TrimSpace(value)
	if name == "" || value == "" {
		return nil, ErrInvalidVariant
	}
	return &Variant{Name: name, Value: value, PriceAdjustment: adjustment}, nil
}

// Signature identifies the variant within a product. A nil variant has an empty signature.
func (v *Variant) Signature() string {
	if v == nil {
		return ""
	}
	return Signature(v.Name, v.Value)
}

func Signature(name, value string) string {
	if name == "" && value == "" {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(name)) + "=" + strings.ToLower(strings.TrimSpace(value))
}

type ShippingMethod string

const (
	ShippingStandard  ShippingMethod = "standard"
	ShippingExpress   ShippingMethod = "express"
	ShippingOvernight ShippingMethod = "overnight"
)

func (m ShippingMethod) String() string { return string(m) }

func (m ShippingMethod) IsValid() bool {
	switch m {
	case ShippingStandard, ShippingExpress, ShippingOvernight:
		return true
	default:
		return false
	}
}

func ParseShippingMethod(s string) (ShippingMethod, error) {
	m := ShippingMethod(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", ErrInvalidShippingMethod
	}
	return m, nil
}

type ShippingRates map[ShippingMethod]money.Money

func DefaultShippingRates() ShippingRates {
	return ShippingRates{
		ShippingStandard:  money.FromCents(599),
		ShippingExpress:   money.FromCents(1299),
		ShippingOvernight: money.FromCents(2499),
	}
}

// Rate falls back to the standard rate for unknown methods.
func (r ShippingRates) Rate(m ShippingMethod) money.Money {
	if rate, ok := r[m]; ok {
		return rate
	}
	return r[ShippingStandard]
}

type Totals struct {
	Subtotal money.Money
	Discount money.Money
	Tax      money.Money
	Shipping money.Money
	Total    money.Money
}

// Consistent reports whether Total == Subtotal - Discount + Tax + Shipping.
func (t Totals) Consistent() bool {
	return t.Subtotal.Sub(t.Discount).Add(t.Tax).Add(t.Shipping) == t.Total
}
