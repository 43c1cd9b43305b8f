package service

import (
	"context"
	"testing"
	"time"

	"github.com/evanhugh/assistant-hub-service/internal/domain"
	"github.com/evanhugh/assistant-hub-service/internal/dto"
	pkgapp "github.com/evanhugh/assistant-hub-service/pkg/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserFixture(t *testing.T, registerEnabled bool) (*memUserRepo, UserService) {
	t.Helper()
	repo := newMemUserRepo()
	tm := pkgapp.NewTokenManager(pkgapp.TokenConfig{
		SecretKey: "test-secret",
		Expiry:    time.Hour,
	})
	svc := NewUserService(repo, tm, zap.NewNop(), &ServiceConfig{
		User: UserServiceConfig{RegisterIsEnable: registerEnabled},
	})
	return repo, svc
}

func registerParams() *dto.UserCreateRequest {
	return &dto.UserCreateRequest{
		Email:           "alice@example.com",
		Nickname:        "alice",
		Password:        "correct-horse",
		ConfirmPassword: "correct-horse",
	}
}

func TestUserRegister(t *testing.T) {
	_, svc := newUserFixture(t, true)

	out, err := svc.Register(context.Background(), registerParams())
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", out.Email)
	assert.NotEmpty(t, out.Token)
	assert.NotZero(t, out.UID)
}

func TestUserRegisterDisabled(t *testing.T) {
	_, svc := newUserFixture(t, false)

	_, err := svc.Register(context.Background(), registerParams())
	assert.ErrorIs(t, err, ErrRegisterDisabled)
}

func TestUserRegisterDuplicateEmail(t *testing.T) {
	_, svc := newUserFixture(t, true)

	_, err := svc.Register(context.Background(), registerParams())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerParams())
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestUserRegisterPasswordMismatch(t *testing.T) {
	_, svc := newUserFixture(t, true)

	params := registerParams()
	params.ConfirmPassword = "something-else"
	_, err := svc.Register(context.Background(), params)
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestUserRegisterInvalidEmail(t *testing.T) {
	_, svc := newUserFixture(t, true)

	params := registerParams()
	params.Email = "not-an-email"
	_, err := svc.Register(context.Background(), params)
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestUserLogin(t *testing.T) {
	_, svc := newUserFixture(t, true)
	_, err := svc.Register(context.Background(), registerParams())
	require.NoError(t, err)

	out, err := svc.Login(context.Background(), &dto.UserLoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	}, "127.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	// 密码错误和用户不存在返回同一个错误
	_, err = svc.Login(context.Background(), &dto.UserLoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	}, "127.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.UserLoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	}, "127.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserChangePassword(t *testing.T) {
	_, svc := newUserFixture(t, true)
	created, err := svc.Register(context.Background(), registerParams())
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), created.UID, &dto.UserChangePasswordRequest{
		OldPassword:     "wrong",
		Password:        "new-password-1",
		ConfirmPassword: "new-password-1",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ChangePassword(context.Background(), created.UID, &dto.UserChangePasswordRequest{
		OldPassword:     "correct-horse",
		Password:        "new-password-1",
		ConfirmPassword: "new-password-1",
	})
	require.NoError(t, err)

	// 旧密码失效，新密码生效
	_, err = svc.Login(context.Background(), &dto.UserLoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	}, "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	out, err := svc.Login(context.Background(), &dto.UserLoginRequest{
		Email:    "alice@example.com",
		Password: "new-password-1",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, created.UID, out.UID)
}

func TestUserGetInfo(t *testing.T) {
	_, svc := newUserFixture(t, true)
	created, err := svc.Register(context.Background(), registerParams())
	require.NoError(t, err)

	info, err := svc.GetInfo(context.Background(), created.UID)
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Nickname)
	assert.Empty(t, info.Token)

	_, err = svc.GetInfo(context.Background(), 12345)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}