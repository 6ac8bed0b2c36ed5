package handler

import (
	"strconv"

	"Rankboard/internal/api/dto"
	"Rankboard/internal/pkg/response"
	"Rankboard/internal/pkg/util"
	"Rankboard/internal/service"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerSvc service.CustomerService
	authzSvc    service.AuthzService
}

func NewCustomerHandler(customerSvc service.CustomerService, authzSvc service.AuthzService) *CustomerHandler {
	return &CustomerHandler{
		customerSvc: customerSvc,
		authzSvc:    authzSvc,
	}
}

// ListCustomers 按 seo_dev_id 过滤时仅返回该负责人的客户
func (s *CustomerHandler) ListCustomers(c *gin.Context) {
	var seoDevID *uint64
	if raw := c.Query("seo_dev_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		seoDevID = &id
	}
	customers, err := s.customerSvc.ListCustomers(c.Request.Context(), seoDevID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, customers)
}

func (s *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if d := s.authzSvc.RequireCustomerAccess(c.Request.Context(), currentSession(c), customerID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	customer, err := s.customerSvc.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, customer)
}

func (s *CustomerHandler) UpdateCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var updateDTO dto.UpdateCustomerDTO
	err := c.ShouldBind(&updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.customerSvc.UpdateCustomer(c.Request.Context(), customerID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CustomerHandler) AssignSeoDev(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var assignDTO dto.AssignSeoDevDTO
	err := c.ShouldBind(&assignDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&assignDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.customerSvc.AssignSeoDev(c.Request.Context(), customerID, &assignDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
