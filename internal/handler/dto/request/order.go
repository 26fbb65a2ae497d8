package request

import "commerce-core/internal/usecase/commands"

type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type UpdateOrderStatusRequest struct {
	Status         string  `json:"status" binding:"required,oneof=pending confirmed processing shipped delivered cancelled returned"`
	TrackingNumber *string `json:"tracking_number" binding:"omitempty,max=128"`
	Reason         string  `json:"reason" binding:"max=500"`
}

func (r *UpdateOrderStatusRequest) ToInput() commands.UpdateStatusInput {
	return commands.UpdateStatusInput{
		Status:         r.Status,
		TrackingNumber: r.TrackingNumber,
		Reason:         r.Reason,
	}
}
