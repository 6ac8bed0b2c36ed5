package repository

import (
	"Rankboard/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type AiOverviewRepo interface {
	GetOverviewByID(ctx context.Context, id uint64) (*model.AiOverview, error)
	ListOverviewsByCustomer(ctx context.Context, customerID uint64) ([]*model.AiOverview, error)
	CreateOverview(ctx context.Context, overview *model.AiOverview) error
	DeleteOverview(ctx context.Context, id uint64) (int64, error)
}

type AiOverviewRepoImpl struct {
	db *gorm.DB
}

func NewAiOverviewRepo(db *gorm.DB) AiOverviewRepo {
	return &AiOverviewRepoImpl{db: db}
}

func (s *AiOverviewRepoImpl) GetOverviewByID(ctx context.Context, id uint64) (*model.AiOverview, error) {
	overview := &model.AiOverview{}
	result := s.db.WithContext(ctx).
		Preload("Images").
		First(overview, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return overview, nil
}

func (s *AiOverviewRepoImpl) ListOverviewsByCustomer(ctx context.Context, customerID uint64) ([]*model.AiOverview, error) {
	overviews := make([]*model.AiOverview, 0)
	result := s.db.WithContext(ctx).
		Preload("Images").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&overviews)
	if result.Error != nil {
		return nil, result.Error
	}
	return overviews, nil
}

// CreateOverview 概览与图片记录在同一事务中创建
func (s *AiOverviewRepoImpl) CreateOverview(ctx context.Context, overview *model.AiOverview) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		images := overview.Images
		overview.Images = nil
		if result := tx.Create(overview); result.Error != nil {
			return result.Error
		}

		for i := range images {
			images[i].OverviewID = overview.ID
		}
		if len(images) > 0 {
			if result := tx.Create(&images); result.Error != nil {
				return result.Error
			}
		}
		overview.Images = images

		return nil
	})
}

// DeleteOverview 级联删除图片记录，磁盘文件由 service 层尽力清理
func (s *AiOverviewRepoImpl) DeleteOverview(ctx context.Context, id uint64) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("overview_id = ?", id).Delete(&model.AiOverviewImage{}); result.Error != nil {
			return result.Error
		}

		result := tx.Delete(&model.AiOverview{}, id)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected

		return nil
	})
	return affected, err
}
