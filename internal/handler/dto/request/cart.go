package request

import (
	"commerce-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type VariantRequest struct {
	Name  string `json:"name" binding:"required,max=64"`
	Value string `json:"value" binding:"required,max=64"`
}

type AddItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1,max=999"`
	Variant   *VariantRequest `json:"variant"`
}

func (r *AddItemRequest) ToInput() commands.AddItemInput {
	in := commands.AddItemInput{
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
	}
	if r.Variant != nil {
		in.Variant = &commands.VariantInput{Name: r.Variant.Name, Value: r.Variant.Value}
	}
	return in
}

// UpdateQuantityRequest: zero removes the line.
type UpdateQuantityRequest struct {
	Quantity         *int   `json:"quantity" binding:"required,min=0,max=999"`
	VariantSignature string `json:"variant_signature" binding:"max=130"`
}

type CouponRequest struct {
	Code  string `json:"code" binding:"required,min=3,max=32"`
	Kind  string `json:"kind" binding:"required,oneof=percentage fixed"`
	Value string `json:"value" binding:"required,numeric"`
}

func (r *CouponRequest) ToInput() commands.CouponInput {
	return commands.CouponInput{Code: r.Code, Kind: r.Kind, Value: r.Value}
}

type ShippingMethodRequest struct {
	Method string `json:"method" binding:"required,oneof=standard express overnight"`
}
