package handler

import (
	"io"
	"mime/multipart"

	"Rankboard/internal/pkg/response"
	"Rankboard/internal/service"

	"github.com/gin-gonic/gin"
)

type AiOverviewHandler struct {
	overviewSvc service.AiOverviewService
	authzSvc    service.AuthzService
}

func NewAiOverviewHandler(overviewSvc service.AiOverviewService, authzSvc service.AuthzService) *AiOverviewHandler {
	return &AiOverviewHandler{
		overviewSvc: overviewSvc,
		authzSvc:    authzSvc,
	}
}

func (s *AiOverviewHandler) ListOverviews(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if d := s.authzSvc.RequireCustomerAccess(c.Request.Context(), currentSession(c), customerID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	overviews, err := s.overviewSvc.ListOverviews(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, overviews)
}

// CreateOverview multipart 表单：title + images[]，图片数量和格式在落盘前校验
func (s *AiOverviewHandler) CreateOverview(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	title := c.PostForm("title")
	if title == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	files, err := readFormFiles(form.File["images"])
	if err != nil {
		response.Error(c, err)
		return
	}
	overview, err := s.overviewSvc.CreateOverview(c.Request.Context(), customerID, title, files)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, overview)
}

func (s *AiOverviewHandler) DeleteOverview(c *gin.Context) {
	overviewID, ok := parseIDParam(c, "overview_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err := s.overviewSvc.DeleteOverview(c.Request.Context(), overviewID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func readFormFiles(headers []*multipart.FileHeader) ([]service.UploadFile, error) {
	files := make([]service.UploadFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return nil, service.ErrParamInvalid
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, service.ErrParamInvalid
		}
		files = append(files, service.UploadFile{Data: data, Name: header.Filename})
	}
	return files, nil
}
