package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kiernans/blog-top/internal/models"
	"github.com/kiernans/blog-top/internal/repository"
	"github.com/kiernans/blog-top/internal/validation"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor applied to stored password hashes.
const bcryptCost = 10

// denylistKeyPrefix namespaces revoked tokens in redis.
const denylistKeyPrefix = "denylist:"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// ValidationError carries the accumulated field errors for a rejected
// request. Storage is never touched when one is returned.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// SignupRequest is the payload for creating a new user.
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Token     string            `json:"token"`
	ExpiresIn int64             `json:"expires_in"`
	User      models.PublicUser `json:"user"`
}

// AuthService defines authentication operations.
type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	Logout(ctx context.Context, token string) error
	IsTokenRevoked(ctx context.Context, token string) (bool, error)
	CurrentUser(ctx context.Context, claims *Claims) (*models.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService JWTService
	redis      *redis.Client
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, jwtService JWTService, redisClient *redis.Client) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		redis:      redisClient,
	}
}

func (s *authService) Signup(ctx context.Context, req SignupRequest) (*models.User, error) {
	if fields := validation.Signup(req.Name, req.Email, req.Password, req.ConfirmPassword); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        validation.NormalizeEmail(req.Email),
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	if fields := validation.Login(email, password); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	user, err := s.userRepo.FindByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.jwtService.Expiry().Seconds()),
		User: models.PublicUser{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
	}, nil
}

// Logout denylists the presented token for its remaining lifetime so it can
// no longer pass the auth gate.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return err
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}
	return s.redis.Set(ctx, denylistKeyPrefix+token, "1", remaining).Err()
}

func (s *authService) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	_, err := s.redis.Get(ctx, denylistKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check token denylist: %w", err)
	}
	return true, nil
}

// CurrentUser resolves decoded claims back to a live user row. A valid
// token for a user that no longer exists is not authenticated.
func (s *authService) CurrentUser(ctx context.Context, claims *Claims) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}
