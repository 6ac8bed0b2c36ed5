package handler

import (
	"io"

	"Rankboard/internal/api/dto"
	"Rankboard/internal/model"
	"Rankboard/internal/pkg/response"
	"Rankboard/internal/pkg/util"
	"Rankboard/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentSvc  service.PaymentService
	customerSvc service.CustomerService
	authzSvc    service.AuthzService
}

func NewPaymentHandler(paymentSvc service.PaymentService, customerSvc service.CustomerService, authzSvc service.AuthzService) *PaymentHandler {
	return &PaymentHandler{
		paymentSvc:  paymentSvc,
		customerSvc: customerSvc,
		authzSvc:    authzSvc,
	}
}

// UploadProof multipart 表单：file 必填。CUSTOMER 上传到自己的客户档案，
// 员工代传时通过 customer_id 表单字段指定客户。
func (s *PaymentHandler) UploadProof(c *gin.Context) {
	session := currentSession(c)

	customerID, err := s.resolveCustomerID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if d := s.authzSvc.RequireCustomerAccess(c.Request.Context(), session, customerID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	f, err := header.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	data, err := io.ReadAll(f)
	_ = f.Close()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	proof, err := s.paymentSvc.UploadProof(c.Request.Context(), customerID, service.UploadFile{Data: data, Name: header.Filename})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, proof)
}

func (s *PaymentHandler) ListProofs(c *gin.Context) {
	proofs, err := s.paymentSvc.ListProofs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, proofs)
}

func (s *PaymentHandler) ListProofsByCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if d := s.authzSvc.RequireCustomerAccess(c.Request.Context(), currentSession(c), customerID); !d.Allowed {
		response.Error(c, d.Reason)
		return
	}
	proofs, err := s.paymentSvc.ListProofsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, proofs)
}

func (s *PaymentHandler) UpdateProofStatus(c *gin.Context) {
	proofID, ok := parseIDParam(c, "proof_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var statusDTO dto.UpdatePaymentStatusDTO
	err := c.ShouldBind(&statusDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&statusDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.paymentSvc.UpdateProofStatus(c.Request.Context(), proofID, statusDTO.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PaymentHandler) resolveCustomerID(c *gin.Context) (uint64, error) {
	session := currentSession(c)
	if session.Role == model.RoleCustomer {
		customer, err := s.customerSvc.GetCustomerForUser(c.Request.Context(), session.UserID)
		if err != nil {
			return 0, err
		}
		return customer.ID, nil
	}

	customerID, ok := parseFormID(c, "customer_id")
	if !ok {
		return 0, service.ErrParamInvalid
	}
	return customerID, nil
}
