package service

import (
	"Rankboard/internal/model"
	"Rankboard/internal/pkg/consts"
	"Rankboard/internal/pkg/storage"
	"Rankboard/internal/pkg/util"
	"Rankboard/internal/repository"
	"bytes"
	"context"
	"time"
)

type PaymentService interface {
	UploadProof(ctx context.Context, customerID uint64, file UploadFile) (*model.PaymentProof, error)
	ListProofs(ctx context.Context) ([]*model.PaymentProof, error)
	ListProofsByCustomer(ctx context.Context, customerID uint64) ([]*model.PaymentProof, error)
	UpdateProofStatus(ctx context.Context, id uint64, status string) error
}

type PaymentServiceImpl struct {
	paymentRepo  repository.PaymentRepo
	customerRepo repository.CustomerRepo
	maxFileSize  int64
}

func NewPaymentService(paymentRepo repository.PaymentRepo, customerRepo repository.CustomerRepo, maxFileSize int64) PaymentService {
	return &PaymentServiceImpl{
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
		maxFileSize:  maxFileSize,
	}
}

// UploadProof 凭证初始状态 PENDING，等待运营审核
func (s *PaymentServiceImpl) UploadProof(ctx context.Context, customerID uint64, file UploadFile) (*model.PaymentProof, error) {
	customer, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	if len(file.Data) == 0 {
		return nil, ErrParamInvalid
	}
	if s.maxFileSize > 0 && int64(len(file.Data)) > s.maxFileSize {
		return nil, ErrFileTooLarge
	}

	contentType, err := util.GetSafeContentType(bytes.NewReader(file.Data))
	if err != nil {
		return nil, err
	}
	if contentType != consts.MimeJPEG && contentType != consts.MimePNG {
		return nil, ErrFileNotSupported
	}

	objectURL, err := storage.SaveFile(consts.UploadCategoryPayment, file.Data, util.ExtForContentType(contentType))
	if err != nil {
		return nil, err
	}

	proof := &model.PaymentProof{
		CustomerID: customerID,
		UploadURL:  objectURL,
		Status:     model.PaymentStatusPending,
		UploadDate: time.Now(),
	}
	if err = s.paymentRepo.CreateProof(ctx, proof); err != nil {
		cleanupFiles(ctx, []string{objectURL})
		return nil, err
	}

	return proof, nil
}

func (s *PaymentServiceImpl) ListProofs(ctx context.Context) ([]*model.PaymentProof, error) {
	return s.paymentRepo.ListProofs(ctx)
}

func (s *PaymentServiceImpl) ListProofsByCustomer(ctx context.Context, customerID uint64) ([]*model.PaymentProof, error) {
	return s.paymentRepo.ListProofsByCustomer(ctx, customerID)
}

func (s *PaymentServiceImpl) UpdateProofStatus(ctx context.Context, id uint64, status string) error {
	switch status {
	case model.PaymentStatusPending, model.PaymentStatusApproved, model.PaymentStatusRejected:
	default:
		return ErrPaymentStatusInvalid
	}

	affected, err := s.paymentRepo.UpdateProofStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
