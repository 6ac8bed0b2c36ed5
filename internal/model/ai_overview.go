package model

import (
	"time"
)

type AiOverview struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	CustomerID uint64    `gorm:"not null;index:idx_overview_customer" json:"customerId"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	CreatedAt  time.Time `json:"createdAt"`

	Images []AiOverviewImage `gorm:"foreignKey:OverviewID;references:ID;constraint:OnDelete:CASCADE" json:"images"`
}

func (AiOverview) TableName() string {
	return "ai_overviews"
}

type AiOverviewImage struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	OverviewID uint64    `gorm:"not null;index:idx_overview_image" json:"overviewId"`
	UploadURL  string    `gorm:"type:varchar(500);not null;column:upload_url" json:"uploadUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (AiOverviewImage) TableName() string {
	return "ai_overview_images"
}
