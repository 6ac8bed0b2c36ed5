package dto

import "time"

type CustomerDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain"`
	UserID    uint64    `json:"user_id"`
	SeoDevID  *uint64   `json:"seo_dev_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateCustomerDTO struct {
	Name   string `json:"name" validate:"required,max=150"`
	Domain string `json:"domain" validate:"required,max=255"`
}

type AssignSeoDevDTO struct {
	SeoDevID *uint64 `json:"seo_dev_id"`
}
