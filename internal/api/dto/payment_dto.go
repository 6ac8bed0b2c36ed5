package dto

type UpdatePaymentStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
}
