package service

import (
	"context"
	"errors"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/dto"
	pkgapp "github.com/evanhugh/assistant-hub-service/pkg/app"
	"github.com/evanhugh/assistant-hub-service/pkg/timex"
	"github.com/evanhugh/assistant-hub-service/pkg/util"

	"go.uber.org/zap"
)

// 服务层哨兵错误，handler 映射为对应的响应码
var (
	ErrRegisterDisabled   = errors.New("user registration is disabled")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("invalid email address")
)

// UserService 定义用户业务服务接口
type UserService interface {
	// Register 用户注册
	Register(ctx context.Context, params *dto.UserCreateRequest) (*dto.UserDTO, error)

	// Login 用户登录
	Login(ctx context.Context, params *dto.UserLoginRequest, clientIP string) (*dto.UserDTO, error)

	// ChangePassword 修改密码
	ChangePassword(ctx context.Context, uid int64, params *dto.UserChangePasswordRequest) error

	// GetInfo 获取用户信息
	GetInfo(ctx context.Context, uid int64) (*dto.UserDTO, error)
}

// userService 实现 UserService 接口
type userService struct {
	userRepo     domain.UserRepository
	tokenManager pkgapp.TokenManager
	logger       *zap.Logger
	config       *ServiceConfig
}

// NewUserService 创建 UserService 实例
func NewUserService(userRepo domain.UserRepository, tokenManager pkgapp.TokenManager, logger *zap.Logger, config *ServiceConfig) UserService {
	return &userService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		logger:       logger,
		config:       config,
	}
}

func (s *userService) domainToDTO(user *domain.User) *dto.UserDTO {
	if user == nil {
		return nil
	}
	return &dto.UserDTO{
		UID:       user.UID,
		Email:     user.Email,
		Nickname:  user.Nickname,
		Avatar:    user.Avatar,
		CreatedAt: timex.Time(user.CreatedAt),
		UpdatedAt: timex.Time(user.UpdatedAt),
	}
}

// Register 用户注册
func (s *userService) Register(ctx context.Context, params *dto.UserCreateRequest) (*dto.UserDTO, error) {
	if s.config == nil || !s.config.User.RegisterIsEnable {
		return nil, ErrRegisterDisabled
	}
	if params.Password != params.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	// 绑定层已校验格式，这里兜底非 HTTP 调用方
	if !util.IsValidEmail(params.Email) {
		return nil, ErrInvalidEmail
	}

	password, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		Email:     params.Email,
		Nickname:  params.Nickname,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Generate(user.UID, user.Email, "")
	if err != nil {
		return nil, err
	}

	out := s.domainToDTO(user)
	out.Token = token
	return out, nil
}

// Login 用户登录
func (s *userService) Login(ctx context.Context, params *dto.UserLoginRequest, clientIP string) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// 密码错误与用户不存在返回同一错误，避免探测注册邮箱
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !util.CheckPasswordHash(user.Password, params.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.UID, user.Email, clientIP)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user login",
		zap.Int64("uid", user.UID),
		zap.String("ip", clientIP))

	out := s.domainToDTO(user)
	out.Token = token
	return out, nil
}

// ChangePassword 修改密码
func (s *userService) ChangePassword(ctx context.Context, uid int64, params *dto.UserChangePasswordRequest) error {
	if params.Password != params.ConfirmPassword {
		return ErrPasswordMismatch
	}

	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return err
	}
	if !util.CheckPasswordHash(user.Password, params.OldPassword) {
		return ErrInvalidCredentials
	}

	hash, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, uid, hash)
}

// GetInfo 获取用户信息
func (s *userService) GetInfo(ctx context.Context, uid int64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(user), nil
}
