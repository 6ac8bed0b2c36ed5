package service

import (
	"Rankboard/internal/model"
	"Rankboard/internal/pkg/security"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 服务层测试直接走真实仓储 + sqlite 文件库，Redis 未初始化时缓存自动退化为直查

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.OverallMetrics{},
		&model.OverallMetricsHistory{},
		&model.KeywordReport{},
		&model.KeywordReportHistory{},
		&model.KeywordRecommend{},
		&model.AiOverview{},
		&model.AiOverviewImage{},
		&model.PaymentProof{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role, password string) *model.User {
	t.Helper()

	hash, err := security.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &model.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedCustomer(t *testing.T, db *gorm.DB, userID uint64, name, domain string) *model.Customer {
	t.Helper()

	customer := &model.Customer{
		Name:   name,
		Domain: domain,
		UserID: userID,
	}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return customer
}

// pngBytes / jpegBytes 只含魔数头，足够通过 MIME 嗅探
func pngBytes() []byte {
	return []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13}
}

func jpegBytes() []byte {
	return []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F'}
}

func strPtr(v string) *string { return &v }
