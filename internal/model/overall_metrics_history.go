package model

import (
	"time"
)

// OverallMetricsHistory 只追加的域名指标快照，正常流程不做更新和删除
type OverallMetricsHistory struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	CustomerID      uint64    `gorm:"not null;index:idx_history_customer_date,priority:1" json:"customerId"`
	DomainRating    int       `gorm:"not null;default:0" json:"domainRating"`
	HealthScore     int       `gorm:"not null;default:0" json:"healthScore"`
	AgeInYears      int       `gorm:"not null;default:0" json:"ageInYears"`
	AgeInMonths     int       `gorm:"not null;default:0" json:"ageInMonths"`
	SpamScore       int       `gorm:"not null;default:0" json:"spamScore"`
	OrganicTraffic  int       `gorm:"not null;default:0" json:"organicTraffic"`
	OrganicKeywords int       `gorm:"not null;default:0" json:"organicKeywords"`
	Backlinks       int       `gorm:"not null;default:0" json:"backlinks"`
	RefDomains      int       `gorm:"not null;default:0" json:"refDomains"`
	DateRecorded    time.Time `gorm:"not null;index:idx_history_customer_date,priority:2" json:"dateRecorded"`
}

func (OverallMetricsHistory) TableName() string {
	return "overall_metrics_history"
}
