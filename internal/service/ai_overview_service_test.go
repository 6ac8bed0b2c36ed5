package service

import (
	"Rankboard/internal/model"
	"Rankboard/internal/pkg/storage"
	"Rankboard/internal/repository"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func newOverviewService(t *testing.T) (AiOverviewService, *gorm.DB, string) {
	t.Helper()

	uploadDir := t.TempDir()
	if err := storage.Init(uploadDir, "/uploads"); err != nil {
		t.Fatalf("init storage: %v", err)
	}

	db := newTestDB(t)
	svc := NewAiOverviewService(repository.NewAiOverviewRepo(db), repository.NewCustomerRepo(db), 10*1024*1024)
	return svc, db, uploadDir
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()

	count := 0
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			count++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", dir, err)
	}
	return count
}

func TestCreateOverviewRejectsTooManyImagesBeforeWriting(t *testing.T) {
	svc, db, uploadDir := newOverviewService(t)
	ctx := context.Background()

	user := seedUser(t, db, "ov", "ov@example.com", model.RoleCustomer, "secret123")
	customer := seedCustomer(t, db, user.ID, "OV Co", "ov.example.com")

	files := []UploadFile{
		{Data: pngBytes(), Name: "1.png"},
		{Data: pngBytes(), Name: "2.png"},
		{Data: pngBytes(), Name: "3.png"},
		{Data: pngBytes(), Name: "4.png"},
	}
	_, err := svc.CreateOverview(ctx, customer.ID, "too many", files)
	if !errors.Is(err, ErrImageLimitExceeded) {
		t.Fatalf("err = %v, want ErrImageLimitExceeded", err)
	}
	if got := countFiles(t, uploadDir); got != 0 {
		t.Fatalf("upload dir has %d files, want 0", got)
	}
}

func TestCreateOverviewRejectsNonImageBeforeWriting(t *testing.T) {
	svc, db, uploadDir := newOverviewService(t)
	ctx := context.Background()

	user := seedUser(t, db, "ov2", "ov2@example.com", model.RoleCustomer, "secret123")
	customer := seedCustomer(t, db, user.ID, "OV2 Co", "ov2.example.com")

	files := []UploadFile{
		{Data: pngBytes(), Name: "ok.png"},
		{Data: []byte("%PDF-1.7 not an image"), Name: "doc.pdf"},
	}
	_, err := svc.CreateOverview(ctx, customer.ID, "mixed", files)
	if !errors.Is(err, ErrFileNotSupported) {
		t.Fatalf("err = %v, want ErrFileNotSupported", err)
	}
	// 任何一个文件校验失败，整批都不落盘
	if got := countFiles(t, uploadDir); got != 0 {
		t.Fatalf("upload dir has %d files, want 0", got)
	}
}

func TestCreateOverviewSavesImagesAndRows(t *testing.T) {
	svc, db, uploadDir := newOverviewService(t)
	ctx := context.Background()

	user := seedUser(t, db, "ov3", "ov3@example.com", model.RoleCustomer, "secret123")
	customer := seedCustomer(t, db, user.ID, "OV3 Co", "ov3.example.com")

	files := []UploadFile{
		{Data: pngBytes(), Name: "a.png"},
		{Data: jpegBytes(), Name: "b.jpg"},
	}
	overview, err := svc.CreateOverview(ctx, customer.ID, "serp screenshots", files)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(overview.Images) != 2 {
		t.Fatalf("images len = %d, want 2", len(overview.Images))
	}
	if got := countFiles(t, uploadDir); got != 2 {
		t.Fatalf("upload dir has %d files, want 2", got)
	}

	listed, err := svc.ListOverviews(ctx, customer.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || len(listed[0].Images) != 2 {
		t.Fatalf("listed = %+v, want one overview with two images", listed)
	}
}

func TestDeleteOverviewRemovesRowsAndFiles(t *testing.T) {
	svc, db, uploadDir := newOverviewService(t)
	ctx := context.Background()

	user := seedUser(t, db, "ov4", "ov4@example.com", model.RoleCustomer, "secret123")
	customer := seedCustomer(t, db, user.ID, "OV4 Co", "ov4.example.com")

	overview, err := svc.CreateOverview(ctx, customer.ID, "to delete", []UploadFile{{Data: pngBytes(), Name: "x.png"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteOverview(ctx, overview.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := countFiles(t, uploadDir); got != 0 {
		t.Fatalf("upload dir has %d files after delete, want 0", got)
	}

	if err := svc.DeleteOverview(ctx, overview.ID); !errors.Is(err, ErrOverviewNotFound) {
		t.Fatalf("second delete err = %v, want ErrOverviewNotFound", err)
	}

	var imageCount int64
	if err := db.Model(&model.AiOverviewImage{}).Count(&imageCount).Error; err != nil {
		t.Fatalf("count images: %v", err)
	}
	if imageCount != 0 {
		t.Fatalf("image rows = %d, want 0", imageCount)
	}
}
