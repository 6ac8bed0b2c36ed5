package service

import (
	"Rankboard/internal/api/dto"
	"Rankboard/internal/pkg/redis"
	"Rankboard/internal/pkg/security"
	"Rankboard/internal/repository"
	"context"
	"time"
)

type AuthService interface {
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (string, *dto.SessionDTO, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, userID uint64) (*dto.SessionDTO, error)
}

type AuthServiceImpl struct {
	userRepo repository.UserRepo
}

func NewAuthService(userRepo repository.UserRepo) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Login 认证查询固定走 GetActiveByEmail，注销账号永远无法登录
func (s *AuthServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (string, *dto.SessionDTO, error) {
	user, err := s.userRepo.GetActiveByEmail(ctx, loginDTO.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrPasswordIncorrect
	}

	if err = security.CheckPasswordHash(loginDTO.Password, user.Password); err != nil {
		return "", nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	session := &dto.SessionDTO{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}
	if user.Customer != nil {
		session.CustomerID = &user.Customer.ID
	}

	return token, session, nil
}

// Logout 将 token 签名写入黑名单，有效期与 token 剩余寿命同量级
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, time.Hour*24)
}

func (s *AuthServiceImpl) Me(ctx context.Context, userID uint64) (*dto.SessionDTO, error) {
	user, err := s.userRepo.GetActiveByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	session := &dto.SessionDTO{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}
	if user.Customer != nil {
		session.CustomerID = &user.Customer.ID
	}

	return session, nil
}
