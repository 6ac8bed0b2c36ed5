package repository

import (
	"Rankboard/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// UserRepo 用户数据访问。注销采用软删除：deleted_at 置为当前时间，行不物理删除。
// 活跃/全量 是调用方的显式选择，不做透明拦截。
type UserRepo interface {
	GetActiveByID(ctx context.Context, id uint64) (*model.User, error)
	GetAnyByID(ctx context.Context, id uint64) (*model.User, error)
	GetActiveByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context, includeDeleted bool) ([]*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	CreateCustomerUser(ctx context.Context, user *model.User, customer *model.Customer) error
	UpdateUser(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error
	SoftDelete(ctx context.Context, id uint64) (int64, error)
	SoftDeleteMany(ctx context.Context, ids []uint64) (int64, error)
	Restore(ctx context.Context, id uint64) (int64, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetActiveByID(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ? AND deleted_at IS NULL", id).
		First(user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetAnyByID(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ?", id).
		First(user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

// GetActiveByEmail 认证路径专用，显式排除软删除行，保证注销账号无法登录
func (s *UserRepoImpl) GetActiveByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Preload("Customer").
		Where("email = ? AND deleted_at IS NULL", email).
		First(user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) ListUsers(ctx context.Context, includeDeleted bool) ([]*model.User, error) {
	users := make([]*model.User, 0)
	query := s.db.WithContext(ctx).Preload("Customer")
	if !includeDeleted {
		query = query.Where("deleted_at IS NULL")
	}
	result := query.Order("created_at DESC").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	result := s.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateCustomerUser 注册 CUSTOMER 账号时，用户与客户档案在同一事务中创建
func (s *UserRepoImpl) CreateCustomerUser(ctx context.Context, user *model.User, customer *model.Customer) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(user); result.Error != nil {
			return result.Error
		}

		customer.UserID = user.ID
		if result := tx.Create(customer); result.Error != nil {
			return result.Error
		}

		return nil
	})
}

func (s *UserRepoImpl) UpdateUser(ctx context.Context, user *model.User) error {
	result := s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND deleted_at IS NULL", user.ID).
		Updates(map[string]interface{}{
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (s *UserRepoImpl) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	result := s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("password", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (s *UserRepoImpl) SoftDelete(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())

	return result.RowsAffected, result.Error
}

func (s *UserRepoImpl) SoftDeleteMany(ctx context.Context, ids []uint64) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.User{}).
		Where("id IN ? AND deleted_at IS NULL", ids).
		Update("deleted_at", time.Now())

	return result.RowsAffected, result.Error
}

// Restore 仅在 deleted_at 非空时清除，重复调用不产生影响
func (s *UserRepoImpl) Restore(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)

	return result.RowsAffected, result.Error
}
