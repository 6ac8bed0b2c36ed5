package model

import (
	"time"
)

const (
	RoleAdmin    = "ADMIN"
	RoleSeoDev   = "SEO_DEV"
	RoleCustomer = "CUSTOMER"
)

type User struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(255);uniqueIndex:idx_email;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	Role      string `gorm:"type:varchar(20);not null;default:CUSTOMER"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index:idx_deleted_at"`

	Customer *Customer `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}

// IsDeleted deleted_at 非空即为已注销账号
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}
