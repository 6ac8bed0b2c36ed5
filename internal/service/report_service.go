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
	"golang.org/x/sync/errgroup"
)

type ReportService interface {
	GetReport(ctx context.Context, customerID uint64) (*dto.ReportDTO, error)
	GetReportForUser(ctx context.Context, userID uint64) (*dto.ReportDTO, error)
}

type ReportServiceImpl struct {
	customerRepo  repository.CustomerRepo
	metricsRepo   repository.MetricsRepo
	keywordRepo   repository.KeywordRepo
	recommendRepo repository.RecommendRepo
}

func NewReportService(
	customerRepo repository.CustomerRepo,
	metricsRepo repository.MetricsRepo,
	keywordRepo repository.KeywordRepo,
	recommendRepo repository.RecommendRepo,
) ReportService {
	return &ReportServiceImpl{
		customerRepo:  customerRepo,
		metricsRepo:   metricsRepo,
		keywordRepo:   keywordRepo,
		recommendRepo: recommendRepo,
	}
}

// emptyReport 没有客户档案时报告页也要正常渲染，返回空形状而不是错误
func emptyReport() *dto.ReportDTO {
	return &dto.ReportDTO{
		Metrics:         nil,
		TopKeywords:     []*model.KeywordReport{},
		OtherKeywords:   []*model.KeywordReport{},
		Recommendations: []*model.KeywordRecommend{},
		CustomerName:    nil,
		Domain:          nil,
	}
}

func (s *ReportServiceImpl) GetReport(ctx context.Context, customerID uint64) (*dto.ReportDTO, error) {
	customer, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return emptyReport(), nil
	}
	return s.assembleReport(ctx, customer)
}

// GetReportForUser 客户本人视角：按归属用户解析客户档案
func (s *ReportServiceImpl) GetReportForUser(ctx context.Context, userID uint64) (*dto.ReportDTO, error) {
	customer, err := s.customerRepo.GetCustomerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return emptyReport(), nil
	}
	return s.assembleReport(ctx, customer)
}

// assembleReport 三路并发取数后在内存中按 isTopReport 分组。
// 三次读取不在同一事务内，并发写下各部分可能反映略有差异的时间点，
// 对报表场景可接受。
func (s *ReportServiceImpl) assembleReport(ctx context.Context, customer *model.Customer) (*dto.ReportDTO, error) {
	key := consts.CustomerReportKey + strconv.FormatUint(customer.ID, 10)
	value, err := redis.GetValue(ctx, key)
	if err != nil {
		return nil, err
	}
	if value != "" {
		var report *dto.ReportDTO
		if err = json.Unmarshal([]byte(value), &report); err == nil {
			return report, nil
		}
	}

	var (
		metrics    *model.OverallMetrics
		keywords   []*model.KeywordReport
		recommends []*model.KeywordRecommend
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		metrics, err = s.metricsRepo.GetMetricsByCustomer(gctx, customer.ID)
		return err
	})
	g.Go(func() error {
		var err error
		keywords, err = s.keywordRepo.ListReportsByCustomer(gctx, customer.ID)
		return err
	})
	g.Go(func() error {
		var err error
		recommends, err = s.recommendRepo.ListRecommendsByCustomer(gctx, customer.ID)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	report := emptyReport()
	report.Metrics = metrics
	report.Recommendations = recommends
	for _, kw := range keywords {
		if kw.IsTopReport {
			report.TopKeywords = append(report.TopKeywords, kw)
		} else {
			report.OtherKeywords = append(report.OtherKeywords, kw)
		}
	}

	name := customer.Name
	if customer.User != nil {
		name = customer.User.Name
	}
	domain := customer.Domain
	report.CustomerName = &name
	report.Domain = &domain

	if jsonStr, err := json.Marshal(report); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(jsonStr), time.Minute*10)
	}

	return report, nil
}
