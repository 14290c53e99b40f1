package usecasecontract

import (
	"context"

	"github.com/henok-tadesse/socialnet/internal/domain/entity"
)

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	Register(ctx context.Context, fullName, email, password string, age *int) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
	UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
}
