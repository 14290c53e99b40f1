package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/henok-tadesse/socialnet/internal/domain/contract"
	"github.com/henok-tadesse/socialnet/internal/domain/entity"
	usecasecontract "github.com/henok-tadesse/socialnet/internal/usecase/contract"
)

var (
	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on a failed login or token check.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserUsecase implements registration, login and profile management. It is
// the session collaborator of the reaction engine: handlers resolve the
// authenticated principal here and pass the explicit user ID down.
type UserUsecase struct {
	userRepo   contract.IUserRepository
	tokenRepo  contract.ITokenRepository
	hasher     contract.IHasher
	jwtService JWTService
	logger     usecasecontract.IAppLogger
	config     usecasecontract.IConfigProvider
	validator  usecasecontract.IValidator
	uuidGen    contract.IUUIDGenerator
}

var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// NewUserUsecase creates and returns a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	tokenRepo contract.ITokenRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	config usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGen contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
		config:     config,
		validator:  validator,
		uuidGen:    uuidGen,
	}
}

// Register creates a new user account.
func (u *UserUsecase) Register(ctx context.Context, fullName, email, password string, age *int) (*entity.User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if err := u.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := u.validator.ValidatePasswordStrength(password); err != nil {
		return nil, err
	}
	if age != nil && (*age < 13 || *age > 120) {
		return nil, fmt.Errorf("age must be between 13 and 120")
	}

	if existing, err := u.userRepo.GetUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := u.hasher.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           u.uuidGen.NewUUID(),
		FullName:     fullName,
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		Age:          age,
		Role:         entity.DefaultRole(),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	u.logger.Infof("registered user %s", user.ID)
	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair. The
// refresh token is stored hashed so a database leak cannot replay sessions.
func (u *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}
	if err := u.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, err := u.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := u.issueRefreshToken(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	return user, accessToken, refreshToken, nil
}

// Authenticate resolves the principal behind an access token.
func (u *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := u.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	user, err := u.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// RefreshToken rotates a refresh token and issues a fresh access token.
func (u *UserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := u.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}
	stored, err := u.tokenRepo.GetTokenByHash(ctx, u.hasher.HashString(refreshToken))
	if err != nil || stored.Revoked || stored.UserID != claims.UserID {
		return "", "", ErrInvalidCredentials
	}
	if time.Now().After(stored.ExpiresAt) {
		return "", "", ErrInvalidCredentials
	}

	user, err := u.userRepo.GetUserByID(ctx, stored.UserID)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	accessToken, err := u.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}
	newRefresh, err := u.jwtService.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	expiry := time.Now().Add(u.config.GetRefreshTokenExpiry())
	if err := u.tokenRepo.UpdateToken(ctx, stored.ID, u.hasher.HashString(newRefresh), expiry); err != nil {
		return "", "", fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	return accessToken, newRefresh, nil
}

// Logout revokes the presented refresh token.
func (u *UserUsecase) Logout(ctx context.Context, refreshToken string) error {
	stored, err := u.tokenRepo.GetTokenByHash(ctx, u.hasher.HashString(refreshToken))
	if err != nil {
		// Unknown token: nothing to revoke.
		return nil
	}
	return u.tokenRepo.RevokeToken(ctx, stored.ID)
}

// UpdateProfile applies partial profile updates (full name, age, avatar URL).
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["full_name"].(string); ok {
		v = strings.TrimSpace(v)
		if v == "" {
			return nil, fmt.Errorf("full name cannot be empty")
		}
		user.FullName = v
	}
	if v, ok := updates["age"].(int); ok {
		if v < 13 || v > 120 {
			return nil, fmt.Errorf("age must be between 13 and 120")
		}
		user.Age = &v
	}
	if v, ok := updates["avatar_url"].(string); ok {
		user.AvatarURL = &v
	}

	updated, err := u.userRepo.UpdateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated, nil
}

// GetUserByID retrieves a user by ID.
func (u *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	return u.userRepo.GetUserByID(ctx, userID)
}

func (u *UserUsecase) issueRefreshToken(ctx context.Context, user *entity.User) (string, error) {
	refreshToken, err := u.jwtService.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	now := time.Now()
	record := &entity.Token{
		ID:        u.uuidGen.NewUUID(),
		UserID:    user.ID,
		TokenType: entity.TokenTypeRefresh,
		TokenHash: u.hasher.HashString(refreshToken),
		CreatedAt: now,
		ExpiresAt: now.Add(u.config.GetRefreshTokenExpiry()),
	}
	if err := u.tokenRepo.CreateToken(ctx, record); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}
	return refreshToken, nil
}
