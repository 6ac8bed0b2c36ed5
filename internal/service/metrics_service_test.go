package service

import (
	"Rankboard/internal/api/dto"
	"Rankboard/internal/model"
	"Rankboard/internal/repository"
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func newMetricsService(t *testing.T) (MetricsService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	return NewMetricsService(repository.NewMetricsRepo(db), repository.NewCustomerRepo(db)), db
}

func TestSaveMetricsUnknownCustomer(t *testing.T) {
	svc, _ := newMetricsService(t)

	err := svc.SaveMetrics(context.Background(), 9999, &dto.SaveMetricsDTO{DomainRating: 40})
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("err = %v, want ErrCustomerNotFound", err)
	}
}

func TestSaveMetricsAppendsHistory(t *testing.T) {
	svc, db := newMetricsService(t)
	ctx := context.Background()

	user := seedUser(t, db, "ms", "ms@example.com", model.RoleCustomer, "secret123")
	customer := seedCustomer(t, db, user.ID, "MS Co", "ms.example.com")

	if err := svc.SaveMetrics(ctx, customer.ID, &dto.SaveMetricsDTO{DomainRating: 40, Backlinks: 10}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := svc.SaveMetrics(ctx, customer.ID, &dto.SaveMetricsDTO{DomainRating: 60, Backlinks: 20}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	current, err := svc.GetMetrics(ctx, customer.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if current.DomainRating != 60 {
		t.Fatalf("current rating = %d, want 60", current.DomainRating)
	}

	history, err := svc.GetHistory(ctx, customer.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history len = %d, want 2", len(history))
	}
}

func TestGetHistoryUnknownCustomer(t *testing.T) {
	svc, _ := newMetricsService(t)

	_, err := svc.GetHistory(context.Background(), 9999)
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("err = %v, want ErrCustomerNotFound", err)
	}
}
