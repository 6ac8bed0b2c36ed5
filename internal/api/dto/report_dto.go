package dto

import "Rankboard/internal/model"

// ReportDTO 客户完整报告读模型。没有客户档案时各字段为空，不报错。
type ReportDTO struct {
	Metrics         *model.OverallMetrics     `json:"metrics"`
	TopKeywords     []*model.KeywordReport    `json:"topKeywords"`
	OtherKeywords   []*model.KeywordReport    `json:"otherKeywords"`
	Recommendations []*model.KeywordRecommend `json:"recommendations"`
	CustomerName    *string                   `json:"customerName"`
	Domain          *string                   `json:"domain"`
}
