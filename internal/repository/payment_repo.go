package repository

import (
	"Rankboard/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PaymentRepo interface {
	GetProofByID(ctx context.Context, id uint64) (*model.PaymentProof, error)
	ListProofs(ctx context.Context) ([]*model.PaymentProof, error)
	ListProofsByCustomer(ctx context.Context, customerID uint64) ([]*model.PaymentProof, error)
	CreateProof(ctx context.Context, proof *model.PaymentProof) error
	UpdateProofStatus(ctx context.Context, id uint64, status string) (int64, error)
}

type PaymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) PaymentRepo {
	return &PaymentRepoImpl{db: db}
}

func (s *PaymentRepoImpl) GetProofByID(ctx context.Context, id uint64) (*model.PaymentProof, error) {
	proof := &model.PaymentProof{}
	result := s.db.WithContext(ctx).First(proof, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return proof, nil
}

func (s *PaymentRepoImpl) ListProofs(ctx context.Context) ([]*model.PaymentProof, error) {
	proofs := make([]*model.PaymentProof, 0)
	result := s.db.WithContext(ctx).
		Order("upload_date DESC").
		Find(&proofs)
	if result.Error != nil {
		return nil, result.Error
	}
	return proofs, nil
}

func (s *PaymentRepoImpl) ListProofsByCustomer(ctx context.Context, customerID uint64) ([]*model.PaymentProof, error) {
	proofs := make([]*model.PaymentProof, 0)
	result := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("upload_date DESC").
		Find(&proofs)
	if result.Error != nil {
		return nil, result.Error
	}
	return proofs, nil
}

func (s *PaymentRepoImpl) CreateProof(ctx context.Context, proof *model.PaymentProof) error {
	result := s.db.WithContext(ctx).Create(proof)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (s *PaymentRepoImpl) UpdateProofStatus(ctx context.Context, id uint64, status string) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.PaymentProof{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
