package repository

import (
	"Rankboard/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type KeywordRepo interface {
	GetReportByID(ctx context.Context, id uint64) (*model.KeywordReport, error)
	ListReportsByCustomer(ctx context.Context, customerID uint64) ([]*model.KeywordReport, error)
	CreateReport(ctx context.Context, report *model.KeywordReport) error
	UpdateReport(ctx context.Context, report *model.KeywordReport) error
	DeleteReport(ctx context.Context, id uint64) (int64, error)
	ListHistoryByReport(ctx context.Context, reportID uint64) ([]*model.KeywordReportHistory, error)
}

type KeywordRepoImpl struct {
	db *gorm.DB
}

func NewKeywordRepo(db *gorm.DB) KeywordRepo {
	return &KeywordRepoImpl{db: db}
}

func (s *KeywordRepoImpl) GetReportByID(ctx context.Context, id uint64) (*model.KeywordReport, error) {
	report := &model.KeywordReport{}
	result := s.db.WithContext(ctx).First(report, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return report, nil
}

// ListReportsByCustomer 排序固定为 置顶优先、排名升序，NULL 排名排在最后
func (s *KeywordRepoImpl) ListReportsByCustomer(ctx context.Context, customerID uint64) ([]*model.KeywordReport, error) {
	reports := make([]*model.KeywordReport, 0)
	result := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("is_top_report DESC").
		Order("position IS NULL").
		Order("position ASC").
		Find(&reports)
	if result.Error != nil {
		return nil, result.Error
	}
	return reports, nil
}

func (s *KeywordRepoImpl) CreateReport(ctx context.Context, report *model.KeywordReport) error {
	result := s.db.WithContext(ctx).Create(report)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateReport 更新当前值并在同一事务内把旧值归档到历史表
func (s *KeywordRepoImpl) UpdateReport(ctx context.Context, report *model.KeywordReport) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		previous := &model.KeywordReport{}
		if err := tx.First(previous, report.ID).Error; err != nil {
			return err
		}

		if result := tx.Model(&model.KeywordReport{}).
			Where("id = ?", report.ID).
			Updates(map[string]interface{}{
				"keyword":       report.Keyword,
				"position":      report.Position,
				"traffic":       report.Traffic,
				"kd":            report.Kd,
				"is_top_report": report.IsTopReport,
				"date_recorded": report.DateRecorded,
			}); result.Error != nil {
			return result.Error
		}

		history := &model.KeywordReportHistory{
			ReportID:     previous.ID,
			Keyword:      previous.Keyword,
			Position:     previous.Position,
			Traffic:      previous.Traffic,
			Kd:           previous.Kd,
			IsTopReport:  previous.IsTopReport,
			DateRecorded: report.DateRecorded,
		}
		if result := tx.Create(history); result.Error != nil {
			return result.Error
		}

		return nil
	})
}

func (s *KeywordRepoImpl) DeleteReport(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&model.KeywordReport{}, id)
	return result.RowsAffected, result.Error
}

func (s *KeywordRepoImpl) ListHistoryByReport(ctx context.Context, reportID uint64) ([]*model.KeywordReportHistory, error) {
	history := make([]*model.KeywordReportHistory, 0)
	result := s.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("date_recorded DESC").
		Find(&history)
	if result.Error != nil {
		return nil, result.Error
	}
	return history, nil
}
