package dto

import "time"

type CreateUserDTO struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6,max=72"`
	Role        string  `json:"role" validate:"required,oneof=ADMIN SEO_DEV CUSTOMER"`
	CompanyName *string `json:"company_name" validate:"omitempty,max=150"`
	Domain      *string `json:"domain" validate:"omitempty,max=255"`
}

type UpdateUserDTO struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=ADMIN SEO_DEV CUSTOMER"`
}

type ChangePasswordDTO struct {
	CurrentPassword *string `json:"current_password"`
	NewPassword     string  `json:"new_password" validate:"required,min=6,max=72"`
}

type UserDTO struct {
	ID        uint64       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Role      string       `json:"role"`
	CreatedAt time.Time    `json:"created_at"`
	DeletedAt *time.Time   `json:"deleted_at,omitempty"`
	Customer  *CustomerDTO `json:"customer,omitempty"`
}
