package model

import (
	"time"
)

const (
	KdEasy   = "EASY"
	KdMedium = "MEDIUM"
	KdHard   = "HARD"
)

type KeywordReport struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	CustomerID   uint64    `gorm:"not null;index:idx_report_customer" json:"customerId"`
	Keyword      string    `gorm:"type:varchar(255);not null" json:"keyword"`
	Position     *int      `gorm:"type:int" json:"position"`
	Traffic      int       `gorm:"not null;default:0" json:"traffic"`
	Kd           string    `gorm:"type:varchar(10);not null;default:MEDIUM" json:"kd"`
	IsTopReport  bool      `gorm:"not null;default:0" json:"isTopReport"`
	DateRecorded time.Time `gorm:"not null" json:"dateRecorded"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (KeywordReport) TableName() string {
	return "keyword_reports"
}
