package model

import (
	"time"
)

const (
	PaymentStatusPending  = "PENDING"
	PaymentStatusApproved = "APPROVED"
	PaymentStatusRejected = "REJECTED"
)

type PaymentProof struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	CustomerID uint64    `gorm:"not null;index:idx_payment_customer" json:"customerId"`
	UploadURL  string    `gorm:"type:varchar(500);not null;column:upload_url" json:"uploadUrl"`
	Status     string    `gorm:"type:varchar(20);not null;default:PENDING" json:"status"`
	UploadDate time.Time `gorm:"not null" json:"uploadDate"`
}

func (PaymentProof) TableName() string {
	return "payment_proofs"
}
