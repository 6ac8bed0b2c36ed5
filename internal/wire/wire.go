package wire

import (
	"Rankboard/internal/api"
	"Rankboard/internal/api/config"
	"Rankboard/internal/api/handler"
	"Rankboard/internal/repository"
	"Rankboard/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	metricsRepo := repository.NewMetricsRepo(db)
	keywordRepo := repository.NewKeywordRepo(db)
	recommendRepo := repository.NewRecommendRepo(db)
	overviewRepo := repository.NewAiOverviewRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)

	maxFileSize := cfg.Upload.MaxSizeMB * 1024 * 1024

	authzService := service.NewAuthzService(customerRepo, keywordRepo, recommendRepo, overviewRepo)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, customerRepo)
	customerService := service.NewCustomerService(customerRepo, userRepo)
	metricsService := service.NewMetricsService(metricsRepo, customerRepo)
	keywordService := service.NewKeywordService(keywordRepo, customerRepo)
	recommendService := service.NewRecommendService(recommendRepo, customerRepo)
	reportService := service.NewReportService(customerRepo, metricsRepo, keywordRepo, recommendRepo)
	overviewService := service.NewAiOverviewService(overviewRepo, customerRepo, maxFileSize)
	paymentService := service.NewPaymentService(paymentRepo, customerRepo, maxFileSize)

	handlers := &api.HandlersGroup{
		AuthHandler:       handler.NewAuthHandler(authService),
		UserHandler:       handler.NewUserHandler(userService, authzService),
		CustomerHandler:   handler.NewCustomerHandler(customerService, authzService),
		MetricsHandler:    handler.NewMetricsHandler(metricsService, authzService),
		KeywordHandler:    handler.NewKeywordHandler(keywordService, authzService),
		RecommendHandler:  handler.NewRecommendHandler(recommendService, authzService),
		ReportHandler:     handler.NewReportHandler(reportService, authzService),
		AiOverviewHandler: handler.NewAiOverviewHandler(overviewService, authzService),
		PaymentHandler:    handler.NewPaymentHandler(paymentService, customerService, authzService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
