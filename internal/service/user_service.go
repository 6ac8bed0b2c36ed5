package service

import (
	"Rankboard/internal/api/dto"
	"Rankboard/internal/model"
	"Rankboard/internal/pkg/security"
	"Rankboard/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type UserService interface {
	ListUsers(ctx context.Context, includeDeleted bool) ([]*dto.UserDTO, error)
	GetUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	CreateUser(ctx context.Context, createDTO *dto.CreateUserDTO) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, session Session, id uint64, updateDTO *dto.UpdateUserDTO) error
	ChangePassword(ctx context.Context, session Session, targetID uint64, changeDTO *dto.ChangePasswordDTO) error
	DeleteUser(ctx context.Context, id uint64) error
	RestoreUser(ctx context.Context, id uint64) error
}

type UserServiceImpl struct {
	userRepo     repository.UserRepo
	customerRepo repository.CustomerRepo
}

func NewUserService(userRepo repository.UserRepo, customerRepo repository.CustomerRepo) UserService {
	return &UserServiceImpl{
		userRepo:     userRepo,
		customerRepo: customerRepo,
	}
}

func toUserDTO(user *model.User) *dto.UserDTO {
	userDTO := &dto.UserDTO{}
	_ = copier.Copy(userDTO, user)
	userDTO.Customer = nil
	if user.Customer != nil {
		customerDTO := &dto.CustomerDTO{}
		_ = copier.Copy(customerDTO, user.Customer)
		userDTO.Customer = customerDTO
	}
	return userDTO
}

func (s *UserServiceImpl) ListUsers(ctx context.Context, includeDeleted bool) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.ListUsers(ctx, includeDeleted)
	if err != nil {
		return nil, err
	}

	userDTOs := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		userDTOs = append(userDTOs, toUserDTO(user))
	}
	return userDTOs, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

// CreateUser CUSTOMER 角色必须带公司名和域名，用户与客户档案同事务创建。
// 邮箱唯一约束是全局的，包含已软删除的行。
func (s *UserServiceImpl) CreateUser(ctx context.Context, createDTO *dto.CreateUserDTO) (*dto.UserDTO, error) {
	existing, err := s.userRepo.GetActiveByEmail(ctx, createDTO.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExist
	}

	passwordHash, err := security.HashPassword(createDTO.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     createDTO.Name,
		Email:    createDTO.Email,
		Password: passwordHash,
		Role:     createDTO.Role,
	}

	if createDTO.Role != model.RoleCustomer {
		if err = s.userRepo.CreateUser(ctx, user); err != nil {
			return nil, translateDuplicate(err)
		}
		return toUserDTO(user), nil
	}

	if createDTO.CompanyName == nil || createDTO.Domain == nil {
		return nil, ErrParamInvalid
	}

	taken, err := s.customerRepo.GetCustomerByDomain(ctx, *createDTO.Domain)
	if err != nil {
		return nil, err
	}
	if taken != nil {
		return nil, ErrDomainExist
	}

	customer := &model.Customer{
		Name:   *createDTO.CompanyName,
		Domain: *createDTO.Domain,
	}
	if err = s.userRepo.CreateCustomerUser(ctx, user, customer); err != nil {
		return nil, translateDuplicate(err)
	}

	user.Customer = customer
	return toUserDTO(user), nil
}

// UpdateUser 角色变更只有管理员可做，本人自助更新只能原样带回自己的角色
func (s *UserServiceImpl) UpdateUser(ctx context.Context, session Session, id uint64, updateDTO *dto.UpdateUserDTO) error {
	user, err := s.userRepo.GetActiveByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if updateDTO.Role != user.Role && session.Role != model.RoleAdmin {
		return ErrForbidden
	}

	if user.Email != updateDTO.Email {
		existing, err := s.userRepo.GetActiveByEmail(ctx, updateDTO.Email)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != id {
			return ErrEmailExist
		}
	}

	user.Name = updateDTO.Name
	user.Email = updateDTO.Email
	user.Role = updateDTO.Role

	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return translateDuplicate(err)
	}
	return nil
}

// ChangePassword 本人修改需提供当前密码，管理员代改无需
func (s *UserServiceImpl) ChangePassword(ctx context.Context, session Session, targetID uint64, changeDTO *dto.ChangePasswordDTO) error {
	user, err := s.userRepo.GetActiveByID(ctx, targetID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if session.Role != model.RoleAdmin {
		if changeDTO.CurrentPassword == nil {
			return ErrParamInvalid
		}
		if err = security.CheckPasswordHash(*changeDTO.CurrentPassword, user.Password); err != nil {
			return ErrPasswordIncorrect
		}
	}

	passwordHash, err := security.HashPassword(changeDTO.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, targetID, passwordHash)
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id uint64) error {
	affected, err := s.userRepo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserServiceImpl) RestoreUser(ctx context.Context, id uint64) error {
	affected, err := s.userRepo.Restore(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		user, err := s.userRepo.GetAnyByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		// 已是活跃状态，恢复操作幂等
	}
	return nil
}
