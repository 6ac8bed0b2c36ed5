package handler

import (
	"Rankboard/internal/api/dto"
	"Rankboard/internal/pkg/response"
	"Rankboard/internal/pkg/util"
	"Rankboard/internal/service"

	"github.com/gin-gonic/gin"
)

type RecommendHandler struct {
	recommendSvc service.RecommendService
	authzSvc     service.AuthzService
}

func NewRecommendHandler(recommendSvc service.RecommendService, authzSvc service.AuthzService) *RecommendHandler {
	return &RecommendHandler{
		recommendSvc: recommendSvc,
		authzSvc:     authzSvc,
	}
}

func (s *RecommendHandler) ListRecommends(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if d := s.authzSvc.RequireCustomerAccess(c.Request.Context(), currentSession(c), customerID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	recommends, err := s.recommendSvc.ListRecommends(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, recommends)
}

func (s *RecommendHandler) CreateRecommend(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if d := s.authzSvc.RequireCustomerAccess(c.Request.Context(), currentSession(c), customerID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	var saveDTO dto.SaveRecommendDTO
	err := c.ShouldBind(&saveDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&saveDTO); err != nil {
		response.Error(c, err)
		return
	}
	recommend, err := s.recommendSvc.CreateRecommend(c.Request.Context(), customerID, &saveDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, recommend)
}

func (s *RecommendHandler) UpdateRecommend(c *gin.Context) {
	recommendID, ok := parseIDParam(c, "recommend_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if d := s.authzSvc.RequireRecommendAccess(c.Request.Context(), currentSession(c), recommendID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	var saveDTO dto.SaveRecommendDTO
	err := c.ShouldBind(&saveDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&saveDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.recommendSvc.UpdateRecommend(c.Request.Context(), recommendID, &saveDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *RecommendHandler) DeleteRecommend(c *gin.Context) {
	recommendID, ok := parseIDParam(c, "recommend_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if d := s.authzSvc.RequireRecommendAccess(c.Request.Context(), currentSession(c), recommendID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	err := s.recommendSvc.DeleteRecommend(c.Request.Context(), recommendID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
