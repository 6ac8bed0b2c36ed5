package service

import (
	"Rankboard/internal/api/dto"
	"Rankboard/internal/model"
	"Rankboard/internal/pkg/consts"
	"Rankboard/internal/pkg/redis"
	"Rankboard/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type MetricsService interface {
	GetMetrics(ctx context.Context, customerID uint64) (*model.OverallMetrics, error)
	SaveMetrics(ctx context.Context, customerID uint64, saveDTO *dto.SaveMetricsDTO) error
	GetHistory(ctx context.Context, customerID uint64) ([]*model.OverallMetricsHistory, error)
}

type MetricsServiceImpl struct {
	metricsRepo  repository.MetricsRepo
	customerRepo repository.CustomerRepo
}

func NewMetricsService(metricsRepo repository.MetricsRepo, customerRepo repository.CustomerRepo) MetricsService {
	return &MetricsServiceImpl{
		metricsRepo:  metricsRepo,
		customerRepo: customerRepo,
	}
}

func (s *MetricsServiceImpl) GetMetrics(ctx context.Context, customerID uint64) (*model.OverallMetrics, error) {
	customer, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return s.metricsRepo.GetMetricsByCustomer(ctx, customerID)
}

// SaveMetrics 校验失败在任何写入前返回；写入成功后失效相关缓存
func (s *MetricsServiceImpl) SaveMetrics(ctx context.Context, customerID uint64, saveDTO *dto.SaveMetricsDTO) error {
	customer, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return ErrCustomerNotFound
	}

	metrics := &model.OverallMetrics{
		CustomerID:      customerID,
		DomainRating:    saveDTO.DomainRating,
		HealthScore:     saveDTO.HealthScore,
		AgeInYears:      saveDTO.AgeInYears,
		AgeInMonths:     saveDTO.AgeInMonths,
		SpamScore:       saveDTO.SpamScore,
		OrganicTraffic:  saveDTO.OrganicTraffic,
		OrganicKeywords: saveDTO.OrganicKeywords,
		Backlinks:       saveDTO.Backlinks,
		RefDomains:      saveDTO.RefDomains,
		DateRecorded:    time.Now(),
	}
	if err = s.metricsRepo.SaveMetrics(ctx, metrics); err != nil {
		return err
	}

	invalidateCustomerCaches(ctx, customerID)
	return nil
}

func (s *MetricsServiceImpl) GetHistory(ctx context.Context, customerID uint64) ([]*model.OverallMetricsHistory, error) {
	customer, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	key := consts.CustomerMetricsHistoryKey + strconv.FormatUint(customerID, 10)
	value, err := redis.GetValue(ctx, key)
	if err != nil {
		return nil, err
	}
	if value != "" {
		var history []*model.OverallMetricsHistory
		if err = json.Unmarshal([]byte(value), &history); err == nil {
			return history, nil
		}
	}

	history, err := s.metricsRepo.ListHistory(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if jsonStr, err := json.Marshal(history); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(jsonStr), time.Minute*10)
	}
	return history, nil
}

// invalidateCustomerCaches 写路径统一失效报告与历史缓存
func invalidateCustomerCaches(ctx context.Context, customerID uint64) {
	id := strconv.FormatUint(customerID, 10)
	_ = redis.DeleteKey(ctx, consts.CustomerReportKey+id)
	_ = redis.DeleteKey(ctx, consts.CustomerMetricsHistoryKey+id)
}
