package repository

import (
	"Rankboard/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type RecommendRepo interface {
	GetRecommendByID(ctx context.Context, id uint64) (*model.KeywordRecommend, error)
	ListRecommendsByCustomer(ctx context.Context, customerID uint64) ([]*model.KeywordRecommend, error)
	CreateRecommend(ctx context.Context, recommend *model.KeywordRecommend) error
	UpdateRecommend(ctx context.Context, recommend *model.KeywordRecommend) error
	DeleteRecommend(ctx context.Context, id uint64) (int64, error)
}

type RecommendRepoImpl struct {
	db *gorm.DB
}

func NewRecommendRepo(db *gorm.DB) RecommendRepo {
	return &RecommendRepoImpl{db: db}
}

func (s *RecommendRepoImpl) GetRecommendByID(ctx context.Context, id uint64) (*model.KeywordRecommend, error) {
	recommend := &model.KeywordRecommend{}
	result := s.db.WithContext(ctx).First(recommend, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return recommend, nil
}

func (s *RecommendRepoImpl) ListRecommendsByCustomer(ctx context.Context, customerID uint64) ([]*model.KeywordRecommend, error) {
	recommends := make([]*model.KeywordRecommend, 0)
	result := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&recommends)
	if result.Error != nil {
		return nil, result.Error
	}
	return recommends, nil
}

func (s *RecommendRepoImpl) CreateRecommend(ctx context.Context, recommend *model.KeywordRecommend) error {
	result := s.db.WithContext(ctx).Create(recommend)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (s *RecommendRepoImpl) UpdateRecommend(ctx context.Context, recommend *model.KeywordRecommend) error {
	result := s.db.WithContext(ctx).Model(&model.KeywordRecommend{}).
		Where("id = ?", recommend.ID).
		Updates(map[string]interface{}{
			"keyword":       recommend.Keyword,
			"kd":            recommend.Kd,
			"is_top_report": recommend.IsTopReport,
			"note":          recommend.Note,
		})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (s *RecommendRepoImpl) DeleteRecommend(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&model.KeywordRecommend{}, id)
	return result.RowsAffected, result.Error
}
