package api

import (
	"Rankboard/internal/api/config"
	"Rankboard/internal/api/middleware"
	"Rankboard/internal/model"
	"Rankboard/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	// 上传文件静态托管，库内只存相对路径
	if config.Cfg != nil && config.Cfg.Upload.BaseURL != "" {
		r.Static(config.Cfg.Upload.BaseURL, config.Cfg.Upload.Dir)
	}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", group.AuthHandler.Login)

			loggedGroup := authGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("/logout", group.AuthHandler.Logout)
				loggedGroup.GET("/me", group.AuthHandler.Me)
			}
		}

		userGroup := apiGroup.Group("/users")
		userGroup.Use(middleware.AuthMiddleware())
		{
			// 查看与改密允许本人，Handler 内做 self-or-admin 判定
			userGroup.GET("/:user_id", group.UserHandler.GetUser)
			userGroup.PUT("/:user_id", group.UserHandler.UpdateUser)
			userGroup.PUT("/:user_id/password", group.UserHandler.ChangePassword)

			adminGroup := userGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(model.RoleAdmin))
			{
				adminGroup.GET("", group.UserHandler.ListUsers)
				adminGroup.POST("", group.UserHandler.CreateUser)
				adminGroup.DELETE("/:user_id", group.UserHandler.DeleteUser)
				adminGroup.PUT("/:user_id/restore", group.UserHandler.RestoreUser)
			}
		}

		customerGroup := apiGroup.Group("/customers")
		customerGroup.Use(middleware.AuthMiddleware())
		{
			// 归属客户与 staff 同权的读写，Handler 内走 RequireCustomerAccess
			customerGroup.GET("/:customer_id", group.CustomerHandler.GetCustomer)
			customerGroup.GET("/:customer_id/report", group.ReportHandler.GetReport)
			customerGroup.GET("/:customer_id/metrics", group.MetricsHandler.GetMetrics)
			customerGroup.POST("/:customer_id/metrics", group.MetricsHandler.SaveMetrics)
			customerGroup.GET("/:customer_id/metrics/history", group.MetricsHandler.GetHistory)
			customerGroup.GET("/:customer_id/keywords", group.KeywordHandler.ListKeywords)
			customerGroup.POST("/:customer_id/keywords", group.KeywordHandler.CreateKeyword)
			customerGroup.GET("/:customer_id/recommend-keywords", group.RecommendHandler.ListRecommends)
			customerGroup.POST("/:customer_id/recommend-keywords", group.RecommendHandler.CreateRecommend)
			customerGroup.GET("/:customer_id/ai-overview", group.AiOverviewHandler.ListOverviews)
			customerGroup.GET("/:customer_id/payments", group.PaymentHandler.ListProofsByCustomer)

			staffGroup := customerGroup.Group("")
			staffGroup.Use(middleware.CheckRoles(model.RoleAdmin, model.RoleSeoDev))
			{
				staffGroup.GET("", group.CustomerHandler.ListCustomers)
				staffGroup.PUT("/:customer_id", group.CustomerHandler.UpdateCustomer)
				staffGroup.POST("/:customer_id/ai-overview", group.AiOverviewHandler.CreateOverview)
			}

			adminGroup := customerGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(model.RoleAdmin))
			{
				adminGroup.PUT("/:customer_id/seo-dev", group.CustomerHandler.AssignSeoDev)
			}
		}

		// 子资源条目路由通过父客户做归属校验，归属客户与 staff 均可操作
		keywordGroup := apiGroup.Group("/keywords")
		keywordGroup.Use(middleware.AuthMiddleware())
		{
			keywordGroup.GET("/:keyword_id/history", group.KeywordHandler.GetKeywordHistory)
			keywordGroup.PUT("/:keyword_id", group.KeywordHandler.UpdateKeyword)
			keywordGroup.DELETE("/:keyword_id", group.KeywordHandler.DeleteKeyword)
		}

		recommendGroup := apiGroup.Group("/recommend-keywords")
		recommendGroup.Use(middleware.AuthMiddleware())
		{
			recommendGroup.PUT("/:recommend_id", group.RecommendHandler.UpdateRecommend)
			recommendGroup.DELETE("/:recommend_id", group.RecommendHandler.DeleteRecommend)
		}

		overviewGroup := apiGroup.Group("/ai-overview")
		overviewGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(model.RoleAdmin, model.RoleSeoDev))
		{
			overviewGroup.DELETE("/:overview_id", group.AiOverviewHandler.DeleteOverview)
		}

		reportGroup := apiGroup.Group("/report")
		reportGroup.Use(middleware.AuthMiddleware())
		{
			reportGroup.GET("/me", group.ReportHandler.GetMyReport)
		}

		paymentGroup := apiGroup.Group("/payments")
		paymentGroup.Use(middleware.AuthMiddleware())
		{
			paymentGroup.POST("/upload", group.PaymentHandler.UploadProof)

			staffGroup := paymentGroup.Group("")
			staffGroup.Use(middleware.CheckRoles(model.RoleAdmin, model.RoleSeoDev))
			{
				staffGroup.GET("", group.PaymentHandler.ListProofs)
				staffGroup.PUT("/:proof_id/status", group.PaymentHandler.UpdateProofStatus)
			}
		}
	}

	return r
}
