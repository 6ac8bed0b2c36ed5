package handler

import (
	"Rankboard/internal/api/dto"
	"Rankboard/internal/pkg/response"
	"Rankboard/internal/pkg/util"
	"Rankboard/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc  service.UserService
	authzSvc service.AuthzService
}

func NewUserHandler(userSvc service.UserService, authzSvc service.AuthzService) *UserHandler {
	return &UserHandler{
		userSvc:  userSvc,
		authzSvc: authzSvc,
	}
}

// ListUsers 管理端用户列表，include_deleted=true 时包含已注销账号（用于恢复）
func (s *UserHandler) ListUsers(c *gin.Context) {
	includeDeleted := c.Query("include_deleted") == "true"
	users, err := s.userSvc.ListUsers(c.Request.Context(), includeDeleted)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

func (s *UserHandler) CreateUser(c *gin.Context) {
	var createDTO dto.CreateUserDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	user, err := s.userSvc.CreateUser(c.Request.Context(), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if d := s.authzSvc.RequireSelfOrAdmin(currentSession(c), userID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	user, err := s.userSvc.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) UpdateUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	session := currentSession(c)
	if d := s.authzSvc.RequireSelfOrAdmin(session, userID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	var updateDTO dto.UpdateUserDTO
	err := c.ShouldBind(&updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.userSvc.UpdateUser(c.Request.Context(), session, userID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	session := currentSession(c)
	if d := s.authzSvc.RequireSelfOrAdmin(session, userID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	var changeDTO dto.ChangePasswordDTO
	err := c.ShouldBind(&changeDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.userSvc.ChangePassword(c.Request.Context(), session, userID, &changeDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err := s.userSvc.DeleteUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) RestoreUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err := s.userSvc.RestoreUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
