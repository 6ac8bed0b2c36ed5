package model

import (
	"time"
)

type Customer struct {
	ID        uint64  `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"type:varchar(150);not null"`
	Domain    string  `gorm:"type:varchar(255);uniqueIndex:idx_domain;not null"`
	UserID    uint64  `gorm:"not null;uniqueIndex:idx_customer_user"`
	SeoDevID  *uint64 `gorm:"index:idx_seo_dev"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *User `gorm:"foreignKey:UserID;references:ID"`
}

func (Customer) TableName() string {
	return "customers"
}
