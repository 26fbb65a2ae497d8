package request

import (
	"commerce-core/internal/domain/order"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type AddressRequest struct {
	FullName   string `json:"full_name" binding:"max=128"`
	Line1      string `json:"line1" binding:"required,max=256"`
	Line2      string `json:"line2" binding:"max=256"`
	City       string `json:"city" binding:"required,max=128"`
	State      string `json:"state" binding:"max=128"`
	PostalCode string `json:"postal_code" binding:"required,max=32"`
	Country    string `json:"country" binding:"required,len=2"`
	Phone      string `json:"phone" binding:"max=32"`
}

// PaymentRequest is the descriptor returned by the payment collaborator; it is not re-validated here.
type PaymentRequest struct {
	Method        string `json:"method" binding:"required,max=64"`
	Status        string `json:"status" binding:"omitempty,oneof=pending authorized paid"`
	TransactionID string `json:"transaction_id" binding:"max=128"`
}

type CheckoutRequest struct {
	ShippingAddress AddressRequest  `json:"shipping_address" binding:"required"`
	BillingAddress  *AddressRequest `json:"billing_address"`
	Payment         PaymentRequest  `json:"payment" binding:"required"`
	ShippingMethod  string          `json:"shipping_method" binding:"omitempty,oneof=standard express overnight"`
	Coupon          *CouponRequest  `json:"coupon"`
	Notes           string          `json:"notes" binding:"max=1000"`
	IsGift          bool            `json:"is_gift"`
	GiftMessage     string          `json:"gift_message" binding:"max=500"`
}

func (r *CheckoutRequest) ToInput() (commands.CheckoutInput, error) {
	in := commands.CheckoutInput{
		Payment: order.Payment{
			Method:        r.Payment.Method,
			Status:        order.PaymentStatus(r.Payment.Status),
			TransactionID: r.Payment.TransactionID,
		},
		ShippingMethod: r.ShippingMethod,
		Notes:          r.Notes,
		Gift:           order.Gift{IsGift: r.IsGift, Message: r.GiftMessage},
	}
	if in.Payment.Status == "" {
		in.Payment.Status = order.PaymentPending
	}
	if err := copier.Copy(&in.ShippingAddress, &r.ShippingAddress); err != nil {
		return commands.CheckoutInput{}, errs.Wrap(err, "copy shipping address")
	}
	if r.BillingAddress != nil {
		billing := order.Address{}
		if err := copier.Copy(&billing, r.BillingAddress); err != nil {
			return commands.CheckoutInput{}, errs.Wrap(err, "copy billing address")
		}
		in.BillingAddress = &billing
	}
	if r.Coupon != nil {
		cp := r.Coupon.ToInput()
		in.Coupon = &cp
	}
	return in, nil
}
