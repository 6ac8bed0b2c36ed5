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

func newUserService(t *testing.T) (UserService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	userRepo := repository.NewUserRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	return NewUserService(userRepo, customerRepo), db
}

func TestCreateCustomerUserRequiresCompanyAndDomain(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.CreateUser(context.Background(), &dto.CreateUserDTO{
		Name:     "no company",
		Email:    "nc@example.com",
		Password: "secret123",
		Role:     model.RoleCustomer,
	})
	if !errors.Is(err, ErrParamInvalid) {
		t.Fatalf("err = %v, want ErrParamInvalid", err)
	}
}

func TestCreateCustomerUserBuildsProfile(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.CreateUser(context.Background(), &dto.CreateUserDTO{
		Name:        "acme owner",
		Email:       "acme@example.com",
		Password:    "secret123",
		Role:        model.RoleCustomer,
		CompanyName: strPtr("Acme"),
		Domain:      strPtr("acme.example.com"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Customer == nil {
		t.Fatal("customer profile should be created with user")
	}
	if user.Customer.Domain != "acme.example.com" {
		t.Fatalf("domain = %q", user.Customer.Domain)
	}
}

func TestCreateStaffUserSkipsProfile(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.CreateUser(context.Background(), &dto.CreateUserDTO{
		Name:     "dev",
		Email:    "dev@example.com",
		Password: "secret123",
		Role:     model.RoleSeoDev,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Customer != nil {
		t.Fatal("staff user should not get a customer profile")
	}
}

func TestCreateUserConflicts(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &dto.CreateUserDTO{
		Name:        "first",
		Email:       "dup@example.com",
		Password:    "secret123",
		Role:        model.RoleCustomer,
		CompanyName: strPtr("First"),
		Domain:      strPtr("first.example.com"),
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err = svc.CreateUser(ctx, &dto.CreateUserDTO{
		Name:     "second",
		Email:    "dup@example.com",
		Password: "secret123",
		Role:     model.RoleAdmin,
	})
	if !errors.Is(err, ErrEmailExist) {
		t.Fatalf("email conflict err = %v, want ErrEmailExist", err)
	}

	_, err = svc.CreateUser(ctx, &dto.CreateUserDTO{
		Name:        "third",
		Email:       "third@example.com",
		Password:    "secret123",
		Role:        model.RoleCustomer,
		CompanyName: strPtr("Third"),
		Domain:      strPtr("first.example.com"),
	})
	if !errors.Is(err, ErrDomainExist) {
		t.Fatalf("domain conflict err = %v, want ErrDomainExist", err)
	}
}

func TestChangePasswordRules(t *testing.T) {
	svc, db := newUserService(t)
	ctx := context.Background()

	user := seedUser(t, db, "pw", "pw@example.com", model.RoleCustomer, "oldsecret")

	selfSession := Session{UserID: user.ID, Role: model.RoleCustomer}
	adminSession := Session{UserID: 42, Role: model.RoleAdmin}

	t.Run("self without current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, selfSession, user.ID, &dto.ChangePasswordDTO{NewPassword: "newsecret"})
		if !errors.Is(err, ErrParamInvalid) {
			t.Fatalf("err = %v, want ErrParamInvalid", err)
		}
	})

	t.Run("self with wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, selfSession, user.ID, &dto.ChangePasswordDTO{
			CurrentPassword: strPtr("wrong"),
			NewPassword:     "newsecret",
		})
		if !errors.Is(err, ErrPasswordIncorrect) {
			t.Fatalf("err = %v, want ErrPasswordIncorrect", err)
		}
	})

	t.Run("self with correct current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, selfSession, user.ID, &dto.ChangePasswordDTO{
			CurrentPassword: strPtr("oldsecret"),
			NewPassword:     "newsecret",
		})
		if err != nil {
			t.Fatalf("change: %v", err)
		}
	})

	t.Run("admin skips current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, adminSession, user.ID, &dto.ChangePasswordDTO{NewPassword: "adminset"})
		if err != nil {
			t.Fatalf("admin change: %v", err)
		}
	})
}

func TestDeleteAndRestoreUser(t *testing.T) {
	svc, db := newUserService(t)
	ctx := context.Background()

	user := seedUser(t, db, "dr", "dr@example.com", model.RoleCustomer, "secret123")

	if err := svc.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteUser(ctx, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("second delete err = %v, want ErrUserNotFound", err)
	}

	if err := svc.RestoreUser(ctx, user.ID); err != nil {
		t.Fatalf("restore: %v", err)
	}
	// 已活跃时恢复幂等成功
	if err := svc.RestoreUser(ctx, user.ID); err != nil {
		t.Fatalf("restore active: %v", err)
	}
	if err := svc.RestoreUser(ctx, 9999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("restore missing err = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateUserRoleChangeAdminOnly(t *testing.T) {
	svc, db := newUserService(t)
	ctx := context.Background()

	user := seedUser(t, db, "mallory", "mallory@example.com", model.RoleCustomer, "secret123")
	admin := seedUser(t, db, "root", "root@example.com", model.RoleAdmin, "secret123")

	t.Run("本人自提角色被拒", func(t *testing.T) {
		err := svc.UpdateUser(ctx, Session{UserID: user.ID, Role: model.RoleCustomer}, user.ID, &dto.UpdateUserDTO{
			Name:  "mallory",
			Email: "mallory@example.com",
			Role:  model.RoleAdmin,
		})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("err = %v, want ErrForbidden", err)
		}

		var stored model.User
		if err := db.First(&stored, user.ID).Error; err != nil {
			t.Fatalf("reload user: %v", err)
		}
		if stored.Role != model.RoleCustomer {
			t.Fatalf("role = %q, want %q", stored.Role, model.RoleCustomer)
		}
	})

	t.Run("本人保持原角色可改名", func(t *testing.T) {
		err := svc.UpdateUser(ctx, Session{UserID: user.ID, Role: model.RoleCustomer}, user.ID, &dto.UpdateUserDTO{
			Name:  "mallory renamed",
			Email: "mallory@example.com",
			Role:  model.RoleCustomer,
		})
		if err != nil {
			t.Fatalf("self update: %v", err)
		}
	})

	t.Run("管理员可变更角色", func(t *testing.T) {
		err := svc.UpdateUser(ctx, Session{UserID: admin.ID, Role: model.RoleAdmin}, user.ID, &dto.UpdateUserDTO{
			Name:  "mallory renamed",
			Email: "mallory@example.com",
			Role:  model.RoleSeoDev,
		})
		if err != nil {
			t.Fatalf("admin update: %v", err)
		}

		var stored model.User
		if err := db.First(&stored, user.ID).Error; err != nil {
			t.Fatalf("reload user: %v", err)
		}
		if stored.Role != model.RoleSeoDev {
			t.Fatalf("role = %q, want %q", stored.Role, model.RoleSeoDev)
		}
	})
}
