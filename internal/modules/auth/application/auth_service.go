package application

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saransh1220/flowart/internal/modules/auth/domain"
	"github.com/saransh1220/flowart/internal/modules/auth/infrastructure/jwt"
	directory "github.com/saransh1220/flowart/internal/modules/directory/domain"
	"github.com/saransh1220/flowart/internal/shared/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	TokenType         = "bearer"
	MinPasswordLength = 6
)

// DTOs for registration and login
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	User        *domain.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
}

// AuthService provides authentication operations
type AuthService struct {
	repo      domain.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
	hashCost  int
	randIntN  func(n int) int
}

// NewAuthService creates a new auth service
func NewAuthService(repo domain.UserRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		hashCost:  bcrypt.DefaultCost,
		randIntN:  rand.IntN,
	}
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// GenerateUsername lower-cases name, strips everything but letters and
// digits, and appends a three digit suffix.
func GenerateUsername(name string, randIntN func(int) int) string {
	base := nonAlnum.ReplaceAllString(strings.ToLower(name), "")
	return fmt.Sprintf("%s_%d", base, 100+randIntN(900))
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
}

// Register creates a new account and signs it in
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)

	if req.Name == "" {
		return nil, invalid("name is required")
	}
	if req.Email == "" {
		return nil, invalid("email is required")
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, invalid("invalid email format")
	}
	if len(req.Password) < MinPasswordLength {
		return nil, invalid(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	username, err := s.pickUsername(ctx, req)
	if err != nil {
		return nil, err
	}

	hashedPass, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		Artist: directory.Artist{
			ID:         uuid.NewString(),
			Name:       req.Name,
			Username:   username,
			Avatar:     domain.DefaultAvatar,
			CoverImage: domain.DefaultCoverImage,
			Medium:     directory.MediumDigital,
			Experience: directory.ExperienceEmerging,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		Email:        req.Email,
		PasswordHash: string(hashedPass),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issue(user)
}

// pickUsername uses the requested username or generates one, appending a
// four digit suffix when it is taken.
func (s *AuthService) pickUsername(ctx context.Context, req RegisterRequest) (string, error) {
	username := req.Username
	if username == "" {
		username = GenerateUsername(req.Name, s.randIntN)
	}
	taken, err := s.repo.UsernameExists(ctx, username)
	if err != nil {
		return "", err
	}
	if taken {
		username = fmt.Sprintf("%s_%d", username, 1000+s.randIntN(9000))
	}
	return username, nil
}

// Login authenticates a user and returns the account with a fresh token
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, invalid("missing email or password")
	}

	user, err := s.repo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *domain.User) (*AuthResponse, error) {
	id, err := user.UUID()
	if err != nil {
		return nil, fmt.Errorf("account id %q: %w", user.ID, err)
	}
	token, err := jwt.GenerateToken(s.jwtSecret, s.jwtExpiry, id)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: user, AccessToken: token, TokenType: TokenType}, nil
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// ValidateToken validates a JWT token and returns the claims
func (s *AuthService) ValidateToken(tokenStr string) (*jwt.CustomClaims, error) {
	return jwt.ValidateToken(tokenStr, s.jwtSecret)
}
