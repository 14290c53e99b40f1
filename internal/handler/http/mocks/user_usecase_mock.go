package mocks

import (
	"context"
	"errors"

	"github.com/henok-tadesse/socialnet/internal/domain/entity"
	usecasecontract "github.com/henok-tadesse/socialnet/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the user usecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister      bool
	ShouldFailLogin         bool
	ShouldFailGetByID       bool
	ShouldFailUpdateProfile bool
	ShouldFailRefreshToken  bool
	ShouldFailLogout        bool
	ShouldFailAuthenticate  bool

	// Return values
	MockUser         entity.User
	MockAccessToken  string
	MockRefreshToken string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			FullName: "Test User",
			Email:    "test@example.com",
			Role:     entity.UserRoleUser,
		},
		MockAccessToken:  "mock_access_token",
		MockRefreshToken: "mock_refresh_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, fullName, email, password string, age *int) (*entity.User, error) {
	if m.ShouldFailRegister {
		return nil, errors.New("user creation failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	if m.ShouldFailLogin {
		return nil, "", "", errors.New("login failed")
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, errors.New("invalid token")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	if m.ShouldFailRefreshToken {
		return "", "", errors.New("refresh failed")
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, refreshToken string) error {
	if m.ShouldFailLogout {
		return errors.New("logout failed")
	}
	return nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	if m.ShouldFailUpdateProfile {
		return nil, errors.New("update user failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, errors.New("user not found")
	}
	return &m.MockUser, nil
}
