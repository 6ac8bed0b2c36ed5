package repository

import (
	"Rankboard/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MetricsRepo interface {
	GetMetricsByCustomer(ctx context.Context, customerID uint64) (*model.OverallMetrics, error)
	SaveMetrics(ctx context.Context, metrics *model.OverallMetrics) error
	ListHistory(ctx context.Context, customerID uint64) ([]*model.OverallMetricsHistory, error)
}

type MetricsRepoImpl struct {
	db *gorm.DB
}

func NewMetricsRepo(db *gorm.DB) MetricsRepo {
	return &MetricsRepoImpl{db: db}
}

func (s *MetricsRepoImpl) GetMetricsByCustomer(ctx context.Context, customerID uint64) (*model.OverallMetrics, error) {
	metrics := &model.OverallMetrics{}
	result := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(metrics)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return metrics, nil
}

// SaveMetrics 在单个事务内完成 读旧值 → upsert 新值 → 追加历史快照。
// 快照记录覆盖前的旧值；首次写入没有旧值，快照记录本次写入的值，
// 保证每次成功调用恰好追加一条历史。
func (s *MetricsRepoImpl) SaveMetrics(ctx context.Context, metrics *model.OverallMetrics) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		previous := &model.OverallMetrics{}
		err := tx.Where("customer_id = ?", metrics.CustomerID).First(previous).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		hasPrevious := err == nil

		if result := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"domain_rating", "health_score", "age_in_years", "age_in_months",
				"spam_score", "organic_traffic", "organic_keywords",
				"backlinks", "ref_domains", "date_recorded",
			}),
		}).Create(metrics); result.Error != nil {
			return result.Error
		}

		snapshot := metrics
		if hasPrevious {
			snapshot = previous
		}
		history := &model.OverallMetricsHistory{
			CustomerID:      metrics.CustomerID,
			DomainRating:    snapshot.DomainRating,
			HealthScore:     snapshot.HealthScore,
			AgeInYears:      snapshot.AgeInYears,
			AgeInMonths:     snapshot.AgeInMonths,
			SpamScore:       snapshot.SpamScore,
			OrganicTraffic:  snapshot.OrganicTraffic,
			OrganicKeywords: snapshot.OrganicKeywords,
			Backlinks:       snapshot.Backlinks,
			RefDomains:      snapshot.RefDomains,
			DateRecorded:    metrics.DateRecorded,
		}
		if result := tx.Create(history); result.Error != nil {
			return result.Error
		}

		return nil
	})
}

func (s *MetricsRepoImpl) ListHistory(ctx context.Context, customerID uint64) ([]*model.OverallMetricsHistory, error) {
	history := make([]*model.OverallMetricsHistory, 0)
	result := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date_recorded DESC").
		Find(&history)
	if result.Error != nil {
		return nil, result.Error
	}
	return history, nil
}
