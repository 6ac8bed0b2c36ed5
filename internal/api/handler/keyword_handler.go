package handler

import (
	"Rankboard/internal/api/dto"
	"Rankboard/internal/pkg/response"
	"Rankboard/internal/pkg/util"
	"Rankboard/internal/service"

	"github.com/gin-gonic/gin"
)

type KeywordHandler struct {
	keywordSvc service.KeywordService
	authzSvc   service.AuthzService
}

func NewKeywordHandler(keywordSvc service.KeywordService, authzSvc service.AuthzService) *KeywordHandler {
	return &KeywordHandler{
		keywordSvc: keywordSvc,
		authzSvc:   authzSvc,
	}
}

func (s *KeywordHandler) ListKeywords(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if d := s.authzSvc.RequireCustomerAccess(c.Request.Context(), currentSession(c), customerID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	keywords, err := s.keywordSvc.ListKeywords(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, keywords)
}

func (s *KeywordHandler) CreateKeyword(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if d := s.authzSvc.RequireCustomerAccess(c.Request.Context(), currentSession(c), customerID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	var createDTO dto.CreateKeywordDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	keyword, err := s.keywordSvc.CreateKeyword(c.Request.Context(), customerID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, keyword)
}

// UpdateKeyword 更新前自动把旧值写入历史表
func (s *KeywordHandler) UpdateKeyword(c *gin.Context) {
	keywordID, ok := parseIDParam(c, "keyword_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if d := s.authzSvc.RequireKeywordAccess(c.Request.Context(), currentSession(c), keywordID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	var updateDTO dto.UpdateKeywordDTO
	err := c.ShouldBind(&updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.keywordSvc.UpdateKeyword(c.Request.Context(), keywordID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *KeywordHandler) DeleteKeyword(c *gin.Context) {
	keywordID, ok := parseIDParam(c, "keyword_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if d := s.authzSvc.RequireKeywordAccess(c.Request.Context(), currentSession(c), keywordID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	err := s.keywordSvc.DeleteKeyword(c.Request.Context(), keywordID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *KeywordHandler) GetKeywordHistory(c *gin.Context) {
	keywordID, ok := parseIDParam(c, "keyword_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if d := s.authzSvc.RequireKeywordAccess(c.Request.Context(), currentSession(c), keywordID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	history, err := s.keywordSvc.GetKeywordHistory(c.Request.Context(), keywordID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, history)
}
