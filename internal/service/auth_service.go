package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/teamdebug/quizard/internal/config"
	"github.com/teamdebug/quizard/internal/domain"
	"github.com/teamdebug/quizard/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const MinPasswordLength = 6

var (
	ErrFieldsRequired     = errors.New("all fields are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	tx          repository.TransactionManager
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, tx repository.TransactionManager, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tx:          tx,
		cfg:         cfg,
	}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	User  *domain.User
	Token string
}

// Signup registers a new user. No token is issued; the caller logs in
// explicitly afterwards. Duplicate emails are rejected by the unique index
// on users.email, so concurrent signups with the same email cannot both
// succeed.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, ErrFieldsRequired
	}
	if len(input.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return user, nil
}

// Login validates credentials and issues a bearer token. The token is minted
// first; the last-login touch and the session insert then run in one
// transaction, so a failed login leaves neither behind.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.TokenTTL)

	token, err := s.signToken(user, now, expiresAt)
	if err != nil {
		return nil, err
	}

	err = s.tx.Transaction(ctx, func(repos *repository.Repositories) error {
		if err := repos.User.UpdateLastLogin(ctx, user.ID, now); err != nil {
			return err
		}
		return repos.Session.Create(ctx, &domain.Session{
			ID:        uuid.New(),
			UserID:    user.ID,
			Token:     token,
			ExpiresAt: expiresAt,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	user.LastLoginAt = &now
	return &AuthResult{User: user, Token: token}, nil
}

// Logout revokes a session by token. Always succeeds; the token may already
// be absent.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessionRepo.Delete(ctx, token)
}

func (s *AuthService) signToken(user *domain.User, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"exp":   expiresAt.Unix(),
		"iat":   issuedAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// VerifyToken checks signature and expiry and returns the subject's
// identity. It does not consult the session store.
func (s *AuthService) VerifyToken(tokenString string) (uuid.UUID, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, "", ErrInvalidToken
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	return userID, email, nil
}

// Authorize gates protected requests: the token must carry a valid
// signature and expiry AND still be present in the session store, so logout
// is observable before the next request completes.
func (s *AuthService) Authorize(ctx context.Context, token string) (uuid.UUID, error) {
	userID, _, err := s.VerifyToken(token)
	if err != nil {
		return uuid.Nil, err
	}

	ok, err := s.sessionRepo.Exists(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ListActiveUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.ListActive(ctx)
}
