package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"rotrade/internal/domain/entity"
	"rotrade/internal/domain/repository"
	"rotrade/pkg/errors"
	"rotrade/pkg/logger"
)

type AuthUseCase struct {
	userRepo  repository.UserRepository
	sessions  repository.SessionStore
	jwtSecret []byte
	jwtExpiry time.Duration
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	sessions repository.SessionStore,
	jwtSecret string,
	jwtExpirySeconds int64,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		sessions:  sessions,
		jwtSecret: []byte(jwtSecret),
		jwtExpiry: time.Duration(jwtExpirySeconds) * time.Second,
	}
}

type RegisterInput struct {
	Username string
	Password string
	Confirm  string
}

type AuthResult struct {
	Token string
	User  *entity.User
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.Username == "" || input.Password == "" || input.Confirm == "" {
		return nil, errors.Validation("All fields are required")
	}
	if input.Password != input.Confirm {
		return nil, errors.Validation("Passwords do not match")
	}

	user := &entity.User{
		Username: input.Username,
		Password: input.Password,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := uc.sessions.Save(user); err != nil {
		logger.Warn("Failed to persist session for %s: %v", user.Username, err)
	}

	token, err := uc.generateToken(user.Username)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}
	if user.Password != password {
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}
	if user.IsBlocked {
		return nil, errors.Blocked("Account is blocked")
	}

	if err := uc.sessions.Save(user); err != nil {
		logger.Warn("Failed to persist session for %s: %v", user.Username, err)
	}

	token, err := uc.generateToken(user.Username)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Logout drops the session cache. The user map is untouched.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.sessions.Clear()
}

func (uc *AuthUseCase) Report(ctx context.Context, reporter, target, reason string) (*entity.User, error) {
	if reason == "" {
		return nil, errors.Validation("Report reason is required")
	}
	if reporter == target {
		return nil, errors.Validation("You cannot report yourself")
	}

	user, err := uc.userRepo.GetByUsername(ctx, target)
	if err != nil {
		return nil, err
	}

	user.Reports++
	if user.Reports >= entity.ReportThreshold {
		// Sticky: once set, nothing clears it.
		user.IsBlocked = true
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User %s reported by %s (%d reports)", target, reporter, user.Reports)

	uc.refreshSessionCache(user)

	return user, nil
}

func (uc *AuthUseCase) UpdateProfile(ctx context.Context, username, avatarURL string) (*entity.User, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	user.AvatarURL = avatarURL

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	uc.refreshSessionCache(user)

	return user, nil
}

func (uc *AuthUseCase) GetProfile(ctx context.Context, username string) (*entity.User, error) {
	return uc.userRepo.GetByUsername(ctx, username)
}

// RestoreSession reads the persisted current-user cache back, if any, so a
// restart resumes the previous login.
func (uc *AuthUseCase) RestoreSession(ctx context.Context) (*entity.User, error) {
	cached, err := uc.sessions.Load()
	if err != nil {
		return nil, err
	}

	// The cache is a projection; the user map stays authoritative.
	user, err := uc.userRepo.GetByUsername(ctx, cached.Username)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// refreshSessionCache re-syncs the cached profile copy when the authoritative
// record it mirrors has changed. The cache is never written from anywhere else.
func (uc *AuthUseCase) refreshSessionCache(user *entity.User) {
	cached, err := uc.sessions.Load()
	if err != nil || cached.Username != user.Username {
		return
	}
	if err := uc.sessions.Save(user); err != nil {
		logger.Warn("Failed to refresh session cache for %s: %v", user.Username, err)
	}
}

func (uc *AuthUseCase) generateToken(username string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(uc.jwtExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return "", errors.Internal("Failed to sign token", err)
	}

	return signed, nil
}
