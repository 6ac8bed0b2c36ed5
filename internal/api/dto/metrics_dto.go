package dto

import "time"

// SaveMetricsDTO 分值类 0–100，计数类 ≥0，月龄 0–11
type SaveMetricsDTO struct {
	DomainRating    int `json:"domainRating" validate:"gte=0,lte=100"`
	HealthScore     int `json:"healthScore" validate:"gte=0,lte=100"`
	AgeInYears      int `json:"ageInYears" validate:"gte=0"`
	AgeInMonths     int `json:"ageInMonths" validate:"gte=0,lte=11"`
	SpamScore       int `json:"spamScore" validate:"gte=0,lte=100"`
	OrganicTraffic  int `json:"organicTraffic" validate:"gte=0"`
	OrganicKeywords int `json:"organicKeywords" validate:"gte=0"`
	Backlinks       int `json:"backlinks" validate:"gte=0"`
	RefDomains      int `json:"refDomains" validate:"gte=0"`
}

type MetricsDTO struct {
	CustomerID      uint64    `json:"customerId"`
	DomainRating    int       `json:"domainRating"`
	HealthScore     int       `json:"healthScore"`
	AgeInYears      int       `json:"ageInYears"`
	AgeInMonths     int       `json:"ageInMonths"`
	SpamScore       int       `json:"spamScore"`
	OrganicTraffic  int       `json:"organicTraffic"`
	OrganicKeywords int       `json:"organicKeywords"`
	Backlinks       int       `json:"backlinks"`
	RefDomains      int       `json:"refDomains"`
	DateRecorded    time.Time `json:"dateRecorded"`
}
