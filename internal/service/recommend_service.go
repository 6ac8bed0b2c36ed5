package service

import (
	"Rankboard/internal/api/dto"
	"Rankboard/internal/model"
	"Rankboard/internal/repository"
	"context"
)

type RecommendService interface {
	ListRecommends(ctx context.Context, customerID uint64) ([]*model.KeywordRecommend, error)
	CreateRecommend(ctx context.Context, customerID uint64, saveDTO *dto.SaveRecommendDTO) (*model.KeywordRecommend, error)
	UpdateRecommend(ctx context.Context, id uint64, saveDTO *dto.SaveRecommendDTO) error
	DeleteRecommend(ctx context.Context, id uint64) error
}

type RecommendServiceImpl struct {
	recommendRepo repository.RecommendRepo
	customerRepo  repository.CustomerRepo
}

func NewRecommendService(recommendRepo repository.RecommendRepo, customerRepo repository.CustomerRepo) RecommendService {
	return &RecommendServiceImpl{
		recommendRepo: recommendRepo,
		customerRepo:  customerRepo,
	}
}

func (s *RecommendServiceImpl) ListRecommends(ctx context.Context, customerID uint64) ([]*model.KeywordRecommend, error) {
	customer, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return s.recommendRepo.ListRecommendsByCustomer(ctx, customerID)
}

func (s *RecommendServiceImpl) CreateRecommend(ctx context.Context, customerID uint64, saveDTO *dto.SaveRecommendDTO) (*model.KeywordRecommend, error) {
	customer, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	recommend := &model.KeywordRecommend{
		CustomerID:  customerID,
		Keyword:     saveDTO.Keyword,
		Kd:          saveDTO.Kd,
		IsTopReport: saveDTO.IsTopReport,
		Note:        saveDTO.Note,
	}
	if err = s.recommendRepo.CreateRecommend(ctx, recommend); err != nil {
		return nil, err
	}

	invalidateCustomerCaches(ctx, customerID)
	return recommend, nil
}

func (s *RecommendServiceImpl) UpdateRecommend(ctx context.Context, id uint64, saveDTO *dto.SaveRecommendDTO) error {
	recommend, err := s.recommendRepo.GetRecommendByID(ctx, id)
	if err != nil {
		return err
	}
	if recommend == nil {
		return ErrRecommendNotFound
	}

	recommend.Keyword = saveDTO.Keyword
	recommend.Kd = saveDTO.Kd
	recommend.IsTopReport = saveDTO.IsTopReport
	recommend.Note = saveDTO.Note

	if err = s.recommendRepo.UpdateRecommend(ctx, recommend); err != nil {
		return err
	}

	invalidateCustomerCaches(ctx, recommend.CustomerID)
	return nil
}

func (s *RecommendServiceImpl) DeleteRecommend(ctx context.Context, id uint64) error {
	recommend, err := s.recommendRepo.GetRecommendByID(ctx, id)
	if err != nil {
		return err
	}
	if recommend == nil {
		return ErrRecommendNotFound
	}

	affected, err := s.recommendRepo.DeleteRecommend(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecommendNotFound
	}

	invalidateCustomerCaches(ctx, recommend.CustomerID)
	return nil
}
