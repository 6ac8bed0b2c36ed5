package api

import "Rankboard/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	CustomerHandler   *handler.CustomerHandler
	MetricsHandler    *handler.MetricsHandler
	KeywordHandler    *handler.KeywordHandler
	RecommendHandler  *handler.RecommendHandler
	ReportHandler     *handler.ReportHandler
	AiOverviewHandler *handler.AiOverviewHandler
	PaymentHandler    *handler.PaymentHandler
}
