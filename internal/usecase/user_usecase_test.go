package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henok-tadesse/socialnet/internal/domain/contract"
	"github.com/henok-tadesse/socialnet/internal/domain/entity"
	"github.com/henok-tadesse/socialnet/internal/infrastructure/logger"
	"github.com/henok-tadesse/socialnet/internal/infrastructure/validator"
)

type memUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (r *memUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	cp := *user
	r.byID[user.ID] = &cp
	r.byEmail[user.Email] = &cp
	return nil
}

func (r *memUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if _, ok := r.byID[user.ID]; !ok {
		return nil, contract.ErrUserNotFound
	}
	cp := *user
	r.byID[user.ID] = &cp
	r.byEmail[user.Email] = &cp
	out := cp
	return &out, nil
}

func (r *memUserRepo) DeleteUser(ctx context.Context, id string) error {
	u, ok := r.byID[id]
	if !ok {
		return contract.ErrUserNotFound
	}
	delete(r.byEmail, u.Email)
	delete(r.byID, id)
	return nil
}

type memTokenRepo struct {
	byHash map[string]*entity.Token
	byID   map[string]*entity.Token
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{
		byHash: make(map[string]*entity.Token),
		byID:   make(map[string]*entity.Token),
	}
}

func (r *memTokenRepo) CreateToken(ctx context.Context, token *entity.Token) error {
	cp := *token
	r.byHash[token.TokenHash] = &cp
	r.byID[token.ID] = &cp
	return nil
}

func (r *memTokenRepo) GetTokenByHash(ctx context.Context, tokenHash string) (*entity.Token, error) {
	t, ok := r.byHash[tokenHash]
	if !ok {
		return nil, contract.ErrTokenNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTokenRepo) UpdateToken(ctx context.Context, tokenID string, tokenHash string, expiry time.Time) error {
	t, ok := r.byID[tokenID]
	if !ok {
		return contract.ErrTokenNotFound
	}
	delete(r.byHash, t.TokenHash)
	t.TokenHash = tokenHash
	t.ExpiresAt = expiry
	r.byHash[tokenHash] = t
	return nil
}

func (r *memTokenRepo) RevokeToken(ctx context.Context, id string) error {
	t, ok := r.byID[id]
	if !ok {
		return contract.ErrTokenNotFound
	}
	t.Revoked = true
	return nil
}

func (r *memTokenRepo) RevokeAllTokensForUser(ctx context.Context, userID string, tokenType entity.TokenType) error {
	for _, t := range r.byID {
		if t.UserID == userID && t.TokenType == tokenType {
			t.Revoked = true
		}
	}
	return nil
}

// plainHasher keeps hashes human readable so tests can assert on them.
type plainHasher struct{}

func (plainHasher) HashPassword(password string) (string, error) { return "hash:" + password, nil }

func (plainHasher) ComparePasswordHash(password, hashedPassword string) error {
	if "hash:"+password != hashedPassword {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

func (plainHasher) HashString(s string) string { return "digest:" + s }

func (plainHasher) CheckHash(s, hash string) bool { return "digest:"+s == hash }

// stubJWT issues self-describing tokens instead of real JWTs.
type stubJWT struct {
	seq int
}

func (j *stubJWT) GenerateAccessToken(userID string, role entity.UserRole) (string, error) {
	j.seq++
	return fmt.Sprintf("access:%s:%d", userID, j.seq), nil
}

func (j *stubJWT) GenerateRefreshToken(userID string, role entity.UserRole) (string, error) {
	j.seq++
	return fmt.Sprintf("refresh:%s:%d", userID, j.seq), nil
}

func (j *stubJWT) ParseAccessToken(token string) (*entity.Claims, error) {
	return parseStubToken(token, "access:")
}

func (j *stubJWT) ParseRefreshToken(token string) (*entity.Claims, error) {
	return parseStubToken(token, "refresh:")
}

func parseStubToken(token, prefix string) (*entity.Claims, error) {
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return nil, fmt.Errorf("malformed token")
	}
	rest := token[len(prefix):]
	for i := len(rest) - 1; i >= 0; i-- {
		if rest[i] == ':' {
			return &entity.Claims{UserID: rest[:i]}, nil
		}
	}
	return nil, fmt.Errorf("malformed token")
}

type stubConfig struct{}

func (stubConfig) GetAppBaseURL() string                { return "http://localhost:8080" }
func (stubConfig) GetAccessTokenExpiry() time.Duration  { return 15 * time.Minute }
func (stubConfig) GetRefreshTokenExpiry() time.Duration { return 7 * 24 * time.Hour }
func (stubConfig) GetFeedCacheTTL() time.Duration       { return 30 * time.Second }

type userSeqUUID struct{ n int }

func (g *userSeqUUID) NewUUID() string {
	g.n++
	return fmt.Sprintf("uid-%d", g.n)
}

func newUserUsecaseForTest() (*UserUsecase, *memUserRepo, *memTokenRepo) {
	userRepo := newMemUserRepo()
	tokenRepo := newMemTokenRepo()
	uc := NewUserUsecase(
		userRepo,
		tokenRepo,
		plainHasher{},
		&stubJWT{},
		logger.NewStdLogger(),
		stubConfig{},
		validator.NewValidator(),
		&userSeqUUID{},
	)
	return uc, userRepo, tokenRepo
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	uc, userRepo, _ := newUserUsecaseForTest()
	age := 30

	user, err := uc.Register(context.Background(), "Alice Doe", "Alice@Example.com", "Sup3rSecret", &age)
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hash:Sup3rSecret", user.PasswordHash)
	assert.Equal(t, entity.UserRoleUser, user.Role)
	assert.True(t, user.IsActive)

	stored, err := userRepo.GetUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	uc, _, _ := newUserUsecaseForTest()

	_, err := uc.Register(context.Background(), "Alice Doe", "alice@example.com", "short", nil)
	assert.Error(t, err)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	uc, _, _ := newUserUsecaseForTest()

	_, err := uc.Register(context.Background(), "Alice Doe", "alice@example.com", "Sup3rSecret", nil)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), "Other Alice", "alice@example.com", "Sup3rSecret", nil)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsImplausibleAge(t *testing.T) {
	uc, _, _ := newUserUsecaseForTest()
	age := 7

	_, err := uc.Register(context.Background(), "Kid", "kid@example.com", "Sup3rSecret", &age)
	assert.Error(t, err)
}

func TestLoginIssuesTokenPairAndStoresRefreshHash(t *testing.T) {
	uc, _, tokenRepo := newUserUsecaseForTest()
	_, err := uc.Register(context.Background(), "Alice Doe", "alice@example.com", "Sup3rSecret", nil)
	require.NoError(t, err)

	user, access, refresh, err := uc.Login(context.Background(), "alice@example.com", "Sup3rSecret")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "alice@example.com", user.Email)

	stored, err := tokenRepo.GetTokenByHash(context.Background(), "digest:"+refresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.UserID)
	assert.False(t, stored.Revoked)
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _, _ := newUserUsecaseForTest()
	_, err := uc.Register(context.Background(), "Alice Doe", "alice@example.com", "Sup3rSecret", nil)
	require.NoError(t, err)

	_, _, _, err = uc.Login(context.Background(), "alice@example.com", "WrongPass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokenRotatesStoredHash(t *testing.T) {
	uc, _, tokenRepo := newUserUsecaseForTest()
	_, err := uc.Register(context.Background(), "Alice Doe", "alice@example.com", "Sup3rSecret", nil)
	require.NoError(t, err)
	_, _, refresh, err := uc.Login(context.Background(), "alice@example.com", "Sup3rSecret")
	require.NoError(t, err)

	access2, refresh2, err := uc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access2)
	assert.NotEqual(t, refresh, refresh2)

	// The old hash is gone, the new one resolves.
	_, err = tokenRepo.GetTokenByHash(context.Background(), "digest:"+refresh)
	assert.Error(t, err)
	stored, err := tokenRepo.GetTokenByHash(context.Background(), "digest:"+refresh2)
	require.NoError(t, err)
	assert.False(t, stored.Revoked)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	uc, _, tokenRepo := newUserUsecaseForTest()
	_, err := uc.Register(context.Background(), "Alice Doe", "alice@example.com", "Sup3rSecret", nil)
	require.NoError(t, err)
	_, _, refresh, err := uc.Login(context.Background(), "alice@example.com", "Sup3rSecret")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), refresh))

	stored, err := tokenRepo.GetTokenByHash(context.Background(), "digest:"+refresh)
	require.NoError(t, err)
	assert.True(t, stored.Revoked)

	// A revoked token can no longer be rotated.
	_, _, err = uc.RefreshToken(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateResolvesPrincipal(t *testing.T) {
	uc, _, _ := newUserUsecaseForTest()
	registered, err := uc.Register(context.Background(), "Alice Doe", "alice@example.com", "Sup3rSecret", nil)
	require.NoError(t, err)
	_, access, _, err := uc.Login(context.Background(), "alice@example.com", "Sup3rSecret")
	require.NoError(t, err)

	user, err := uc.Authenticate(context.Background(), access)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = uc.Authenticate(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	uc, _, _ := newUserUsecaseForTest()
	registered, err := uc.Register(context.Background(), "Alice Doe", "alice@example.com", "Sup3rSecret", nil)
	require.NoError(t, err)

	updated, err := uc.UpdateProfile(context.Background(), registered.ID, map[string]interface{}{
		"full_name":  "Alice D.",
		"age":        31,
		"avatar_url": "https://cdn.example.com/a.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice D.", updated.FullName)
	require.NotNil(t, updated.Age)
	assert.Equal(t, 31, *updated.Age)
	require.NotNil(t, updated.AvatarURL)

	_, err = uc.UpdateProfile(context.Background(), registered.ID, map[string]interface{}{"age": 200})
	assert.Error(t, err)
}
