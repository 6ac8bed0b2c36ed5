package model

import (
	"time"
)

type KeywordRecommend struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	CustomerID  uint64  `gorm:"not null;index:idx_recommend_customer" json:"customerId"`
	Keyword     string  `gorm:"type:varchar(255);not null" json:"keyword"`
	Kd          *string `gorm:"type:varchar(10)" json:"kd"`
	IsTopReport bool    `gorm:"not null;default:0" json:"isTopReport"`
	Note        *string `gorm:"type:varchar(500)" json:"note"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (KeywordRecommend) TableName() string {
	return "keyword_recommends"
}
