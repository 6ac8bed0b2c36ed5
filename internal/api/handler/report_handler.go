package handler

import (
	"Rankboard/internal/pkg/response"
	"Rankboard/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportSvc service.ReportService
	authzSvc  service.AuthzService
}

func NewReportHandler(reportSvc service.ReportService, authzSvc service.AuthzService) *ReportHandler {
	return &ReportHandler{
		reportSvc: reportSvc,
		authzSvc:  authzSvc,
	}
}

// GetReport 聚合指定客户的完整报告
func (s *ReportHandler) GetReport(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if d := s.authzSvc.RequireCustomerAccess(c.Request.Context(), currentSession(c), customerID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	report, err := s.reportSvc.GetReport(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

// GetMyReport 客户查看自己的报告，按会话用户反查客户档案
func (s *ReportHandler) GetMyReport(c *gin.Context) {
	session := currentSession(c)
	if d := s.authzSvc.RequireSession(session); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	report, err := s.reportSvc.GetReportForUser(c.Request.Context(), session.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}
