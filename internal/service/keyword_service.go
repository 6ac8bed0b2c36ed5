package service

import (
	"Rankboard/internal/api/dto"
	"Rankboard/internal/model"
	"Rankboard/internal/repository"
	"context"
	"time"
)

type KeywordService interface {
	ListKeywords(ctx context.Context, customerID uint64) ([]*model.KeywordReport, error)
	CreateKeyword(ctx context.Context, customerID uint64, createDTO *dto.CreateKeywordDTO) (*model.KeywordReport, error)
	UpdateKeyword(ctx context.Context, id uint64, updateDTO *dto.UpdateKeywordDTO) error
	DeleteKeyword(ctx context.Context, id uint64) error
	GetKeywordHistory(ctx context.Context, id uint64) ([]*model.KeywordReportHistory, error)
}

type KeywordServiceImpl struct {
	keywordRepo  repository.KeywordRepo
	customerRepo repository.CustomerRepo
}

func NewKeywordService(keywordRepo repository.KeywordRepo, customerRepo repository.CustomerRepo) KeywordService {
	return &KeywordServiceImpl{
		keywordRepo:  keywordRepo,
		customerRepo: customerRepo,
	}
}

func (s *KeywordServiceImpl) ListKeywords(ctx context.Context, customerID uint64) ([]*model.KeywordReport, error) {
	customer, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return s.keywordRepo.ListReportsByCustomer(ctx, customerID)
}

func (s *KeywordServiceImpl) CreateKeyword(ctx context.Context, customerID uint64, createDTO *dto.CreateKeywordDTO) (*model.KeywordReport, error) {
	customer, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	report := &model.KeywordReport{
		CustomerID:   customerID,
		Keyword:      createDTO.Keyword,
		Position:     createDTO.Position,
		Traffic:      createDTO.Traffic,
		Kd:           createDTO.Kd,
		IsTopReport:  createDTO.IsTopReport,
		DateRecorded: time.Now(),
	}
	if err = s.keywordRepo.CreateReport(ctx, report); err != nil {
		return nil, err
	}

	invalidateCustomerCaches(ctx, customerID)
	return report, nil
}

// UpdateKeyword 旧值在同一事务内归档到历史表
func (s *KeywordServiceImpl) UpdateKeyword(ctx context.Context, id uint64, updateDTO *dto.UpdateKeywordDTO) error {
	report, err := s.keywordRepo.GetReportByID(ctx, id)
	if err != nil {
		return err
	}
	if report == nil {
		return ErrKeywordNotFound
	}

	report.Keyword = updateDTO.Keyword
	report.Position = updateDTO.Position
	report.Traffic = updateDTO.Traffic
	report.Kd = updateDTO.Kd
	report.IsTopReport = updateDTO.IsTopReport
	report.DateRecorded = time.Now()

	if err = s.keywordRepo.UpdateReport(ctx, report); err != nil {
		return err
	}

	invalidateCustomerCaches(ctx, report.CustomerID)
	return nil
}

func (s *KeywordServiceImpl) DeleteKeyword(ctx context.Context, id uint64) error {
	report, err := s.keywordRepo.GetReportByID(ctx, id)
	if err != nil {
		return err
	}
	if report == nil {
		return ErrKeywordNotFound
	}

	affected, err := s.keywordRepo.DeleteReport(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrKeywordNotFound
	}

	invalidateCustomerCaches(ctx, report.CustomerID)
	return nil
}

func (s *KeywordServiceImpl) GetKeywordHistory(ctx context.Context, id uint64) ([]*model.KeywordReportHistory, error) {
	report, err := s.keywordRepo.GetReportByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrKeywordNotFound
	}
	return s.keywordRepo.ListHistoryByReport(ctx, id)
}
