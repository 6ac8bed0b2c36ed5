package repository

import (
	"Rankboard/internal/model"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试用独立的 sqlite 文件库，互不串表
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

func seedUser(t *testing.T, db *gorm.DB, name, email, role string) *model.User {
	t.Helper()

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: "hashed",
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
