package handler

import (
	"Rankboard/internal/api/dto"
	"Rankboard/internal/pkg/response"
	"Rankboard/internal/pkg/util"
	"Rankboard/internal/service"

	"github.com/gin-gonic/gin"
)

type MetricsHandler struct {
	metricsSvc service.MetricsService
	authzSvc   service.AuthzService
}

func NewMetricsHandler(metricsSvc service.MetricsService, authzSvc service.AuthzService) *MetricsHandler {
	return &MetricsHandler{
		metricsSvc: metricsSvc,
		authzSvc:   authzSvc,
	}
}

func (s *MetricsHandler) GetMetrics(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if d := s.authzSvc.RequireCustomerAccess(c.Request.Context(), currentSession(c), customerID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	metrics, err := s.metricsSvc.GetMetrics(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metrics)
}

// SaveMetrics 写入当前指标并自动归档一条历史快照
func (s *MetricsHandler) SaveMetrics(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if d := s.authzSvc.RequireCustomerAccess(c.Request.Context(), currentSession(c), customerID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	var saveDTO dto.SaveMetricsDTO
	err := c.ShouldBind(&saveDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&saveDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.metricsSvc.SaveMetrics(c.Request.Context(), customerID, &saveDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *MetricsHandler) GetHistory(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if d := s.authzSvc.RequireCustomerAccess(c.Request.Context(), currentSession(c), customerID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	history, err := s.metricsSvc.GetHistory(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, history)
}
