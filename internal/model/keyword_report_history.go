package model

import (
	"time"
)

// KeywordReportHistory 按 report_id 归档的关键词快照，只追加
type KeywordReportHistory struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	ReportID     uint64    `gorm:"not null;index:idx_kw_history_report_date,priority:1" json:"reportId"`
	Keyword      string    `gorm:"type:varchar(255);not null" json:"keyword"`
	Position     *int      `gorm:"type:int" json:"position"`
	Traffic      int       `gorm:"not null;default:0" json:"traffic"`
	Kd           string    `gorm:"type:varchar(10);not null;default:MEDIUM" json:"kd"`
	IsTopReport  bool      `gorm:"not null;default:0" json:"isTopReport"`
	DateRecorded time.Time `gorm:"not null;index:idx_kw_history_report_date,priority:2" json:"dateRecorded"`
}

func (KeywordReportHistory) TableName() string {
	return "keyword_report_history"
}
