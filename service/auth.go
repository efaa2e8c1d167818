package service

import (
	"Rately/config"
	"Rately/dao"
	"Rately/models"
	"Rately/pkg/jwt"
	"Rately/pkg/snowflake"
	"Rately/types"
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error)
}

type AuthService struct {
	UserDAO *dao.Users
	Config  *config.Config
}

// Register 邮箱注册，注册成功直接发令牌
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error) {
	existing, err := s.UserDAO.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("邮箱已被注册")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:           uint64(snowflake.GenUserID()),
		Email:        req.Email,
		PasswordHash: string(hash),
		Nickname:     req.Nickname,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user.ID)
}

// Login 邮箱登录
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error) {
	user, err := s.UserDAO.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("邮箱或密码错误")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, errors.New("邮箱或密码错误")
	}
	return s.issueToken(user.ID)
}

func (s *AuthService) issueToken(userID uint64) (*types.TokenResponse, error) {
	expire := time.Duration(s.Config.Jwt.ExpiresTime) * time.Second
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), userID, "access", expire)
	if err != nil {
		return nil, err
	}
	return &types.TokenResponse{
		UserID:      userID,
		AccessToken: token,
		ExpiresIn:   s.Config.Jwt.ExpiresTime,
	}, nil
}
