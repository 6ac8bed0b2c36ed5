package model

import (
	"time"
)

type OverallMetrics struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	CustomerID      uint64    `gorm:"not null;uniqueIndex:idx_metrics_customer" json:"customerId"`
	DomainRating    int       `gorm:"not null;default:0" json:"domainRating"`
	HealthScore     int       `gorm:"not null;default:0" json:"healthScore"`
	AgeInYears      int       `gorm:"not null;default:0" json:"ageInYears"`
	AgeInMonths     int       `gorm:"not null;default:0" json:"ageInMonths"`
	SpamScore       int       `gorm:"not null;default:0" json:"spamScore"`
	OrganicTraffic  int       `gorm:"not null;default:0" json:"organicTraffic"`
	OrganicKeywords int       `gorm:"not null;default:0" json:"organicKeywords"`
	Backlinks       int       `gorm:"not null;default:0" json:"backlinks"`
	RefDomains      int       `gorm:"not null;default:0" json:"refDomains"`
	DateRecorded    time.Time `gorm:"not null" json:"dateRecorded"`
}

func (OverallMetrics) TableName() string {
	return "overall_metrics"
}
