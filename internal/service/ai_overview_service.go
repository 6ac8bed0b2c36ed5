package service

import (
	"Rankboard/internal/model"
	"Rankboard/internal/pkg/consts"
	"Rankboard/internal/pkg/storage"
	"Rankboard/internal/pkg/util"
	"Rankboard/internal/repository"
	"bytes"
	"context"
	log "log/slog"
)

// UploadFile 已读入内存的上传内容，校验全部通过前不落盘
type UploadFile struct {
	Data []byte
	Name string
}

type AiOverviewService interface {
	ListOverviews(ctx context.Context, customerID uint64) ([]*model.AiOverview, error)
	CreateOverview(ctx context.Context, customerID uint64, title string, files []UploadFile) (*model.AiOverview, error)
	DeleteOverview(ctx context.Context, id uint64) error
}

type AiOverviewServiceImpl struct {
	overviewRepo repository.AiOverviewRepo
	customerRepo repository.CustomerRepo
	maxFileSize  int64
}

func NewAiOverviewService(overviewRepo repository.AiOverviewRepo, customerRepo repository.CustomerRepo, maxFileSize int64) AiOverviewService {
	return &AiOverviewServiceImpl{
		overviewRepo: overviewRepo,
		customerRepo: customerRepo,
		maxFileSize:  maxFileSize,
	}
}

func (s *AiOverviewServiceImpl) ListOverviews(ctx context.Context, customerID uint64) ([]*model.AiOverview, error) {
	customer, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return s.overviewRepo.ListOverviewsByCustomer(ctx, customerID)
}

// CreateOverview 数量、类型、大小全部校验通过后才写磁盘；最多 3 张，仅 jpg/png
func (s *AiOverviewServiceImpl) CreateOverview(ctx context.Context, customerID uint64, title string, files []UploadFile) (*model.AiOverview, error) {
	customer, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	if title == "" || len(files) == 0 {
		return nil, ErrParamInvalid
	}
	if len(files) > consts.MaxAiOverviewImages {
		return nil, ErrImageLimitExceeded
	}

	exts := make([]string, 0, len(files))
	for _, file := range files {
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
		exts = append(exts, util.ExtForContentType(contentType))
	}

	saved := make([]string, 0, len(files))
	for i, file := range files {
		objectURL, err := storage.SaveFile(consts.UploadCategoryAiOverview, file.Data, exts[i])
		if err != nil {
			cleanupFiles(ctx, saved)
			return nil, err
		}
		saved = append(saved, objectURL)
	}

	overview := &model.AiOverview{
		CustomerID: customerID,
		Title:      title,
	}
	for _, objectURL := range saved {
		overview.Images = append(overview.Images, model.AiOverviewImage{UploadURL: objectURL})
	}

	if err = s.overviewRepo.CreateOverview(ctx, overview); err != nil {
		cleanupFiles(ctx, saved)
		return nil, err
	}

	return overview, nil
}

// DeleteOverview 数据库级联删除成功后尽力清理磁盘文件，失败只记日志
func (s *AiOverviewServiceImpl) DeleteOverview(ctx context.Context, id uint64) error {
	overview, err := s.overviewRepo.GetOverviewByID(ctx, id)
	if err != nil {
		return err
	}
	if overview == nil {
		return ErrOverviewNotFound
	}

	affected, err := s.overviewRepo.DeleteOverview(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOverviewNotFound
	}

	urls := make([]string, 0, len(overview.Images))
	for _, image := range overview.Images {
		urls = append(urls, image.UploadURL)
	}
	cleanupFiles(ctx, urls)

	return nil
}

func cleanupFiles(ctx context.Context, objectURLs []string) {
	for _, objectURL := range objectURLs {
		if err := storage.DeleteFile(objectURL); err != nil {
			log.WarnContext(ctx, "failed to remove uploaded file", "url", objectURL, "err", err)
		}
	}
}
