package handler

import (
	"Rankboard/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// currentSession 从 AuthMiddleware 注入的字段还原会话身份
func currentSession(c *gin.Context) service.Session {
	return service.Session{
		UserID: c.GetUint64("user_id"),
		Role:   c.GetString("role"),
	}
}

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func parseFormID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.PostForm(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
