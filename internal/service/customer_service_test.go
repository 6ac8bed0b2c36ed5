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

func newCustomerService(t *testing.T) (CustomerService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	return NewCustomerService(repository.NewCustomerRepo(db), repository.NewUserRepo(db)), db
}

func TestAssignSeoDevValidatesRole(t *testing.T) {
	svc, db := newCustomerService(t)
	ctx := context.Background()

	owner := seedUser(t, db, "owner", "owner@example.com", model.RoleCustomer, "secret123")
	customer := seedCustomer(t, db, owner.ID, "Owner Co", "owner.example.com")
	seoDev := seedUser(t, db, "dev", "dev@example.com", model.RoleSeoDev, "secret123")
	admin := seedUser(t, db, "admin", "admin@example.com", model.RoleAdmin, "secret123")

	if err := svc.AssignSeoDev(ctx, customer.ID, &dto.AssignSeoDevDTO{SeoDevID: &seoDev.ID}); err != nil {
		t.Fatalf("assign seo dev: %v", err)
	}

	// 非 SEO_DEV 角色不能被指派
	if err := svc.AssignSeoDev(ctx, customer.ID, &dto.AssignSeoDevDTO{SeoDevID: &admin.ID}); !errors.Is(err, ErrRoleInvalid) {
		t.Fatalf("assign admin err = %v, want ErrRoleInvalid", err)
	}

	// 取消指派
	if err := svc.AssignSeoDev(ctx, customer.ID, &dto.AssignSeoDevDTO{SeoDevID: nil}); err != nil {
		t.Fatalf("unassign: %v", err)
	}
	got, err := svc.GetCustomer(ctx, customer.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SeoDevID != nil {
		t.Fatalf("seoDevID = %v, want nil", got.SeoDevID)
	}
}

func TestAssignSeoDevRejectsDeletedDev(t *testing.T) {
	svc, db := newCustomerService(t)
	ctx := context.Background()

	owner := seedUser(t, db, "owner", "owner@example.com", model.RoleCustomer, "secret123")
	customer := seedCustomer(t, db, owner.ID, "Owner Co", "owner.example.com")
	seoDev := seedUser(t, db, "dev", "dev@example.com", model.RoleSeoDev, "secret123")

	userRepo := repository.NewUserRepo(db)
	if _, err := userRepo.SoftDelete(ctx, seoDev.ID); err != nil {
		t.Fatalf("delete dev: %v", err)
	}

	if err := svc.AssignSeoDev(ctx, customer.ID, &dto.AssignSeoDevDTO{SeoDevID: &seoDev.ID}); !errors.Is(err, ErrRoleInvalid) {
		t.Fatalf("err = %v, want ErrRoleInvalid", err)
	}
}

func TestListCustomersFiltersBySeoDev(t *testing.T) {
	svc, db := newCustomerService(t)
	ctx := context.Background()

	u1 := seedUser(t, db, "c1", "c1@example.com", model.RoleCustomer, "secret123")
	u2 := seedUser(t, db, "c2", "c2@example.com", model.RoleCustomer, "secret123")
	dev := seedUser(t, db, "dev", "dev@example.com", model.RoleSeoDev, "secret123")

	assigned := seedCustomer(t, db, u1.ID, "C1 Co", "c1.example.com")
	seedCustomer(t, db, u2.ID, "C2 Co", "c2.example.com")
	if err := db.Model(&model.Customer{}).Where("id = ?", assigned.ID).Update("seo_dev_id", dev.ID).Error; err != nil {
		t.Fatalf("assign: %v", err)
	}

	all, err := svc.ListCustomers(ctx, nil)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all len = %d, want 2", len(all))
	}

	mine, err := svc.ListCustomers(ctx, &dev.ID)
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != assigned.ID {
		t.Fatalf("filtered = %+v, want only the assigned customer", mine)
	}
}

func TestUpdateCustomerDomainConflict(t *testing.T) {
	svc, db := newCustomerService(t)
	ctx := context.Background()

	u1 := seedUser(t, db, "d1", "d1@example.com", model.RoleCustomer, "secret123")
	u2 := seedUser(t, db, "d2", "d2@example.com", model.RoleCustomer, "secret123")
	seedCustomer(t, db, u1.ID, "D1 Co", "d1.example.com")
	second := seedCustomer(t, db, u2.ID, "D2 Co", "d2.example.com")

	err := svc.UpdateCustomer(ctx, second.ID, &dto.UpdateCustomerDTO{Name: "D2 Co", Domain: "d1.example.com"})
	if !errors.Is(err, ErrDomainExist) {
		t.Fatalf("err = %v, want ErrDomainExist", err)
	}

	// 保留自己的域名不算冲突
	if err := svc.UpdateCustomer(ctx, second.ID, &dto.UpdateCustomerDTO{Name: "D2 Renamed", Domain: "d2.example.com"}); err != nil {
		t.Fatalf("self-domain update: %v", err)
	}
}
