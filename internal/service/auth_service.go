package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"systemfit/leveling-app/internal/domain"
	"systemfit/leveling-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists    = errors.New("user with this username already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid username or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

// AuthService registers accounts and authenticates sessions.
type AuthService interface {
	Register(ctx context.Context, username, password string, gender domain.Gender) (token string, account *domain.Account, err error)
	Login(ctx context.Context, username, password string) (token string, account *domain.Account, err error)
}

type authService struct {
	accounts      repository.AccountStore
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(accounts repository.AccountStore, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 24 * time.Hour
	}
	return &authService{
		accounts:      accounts,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register creates a new account seeded with the starting player state and
// logs it in immediately.
func (s *authService) Register(ctx context.Context, username, password string, gender domain.Gender) (string, *domain.Account, error) {
	if username == "" || password == "" {
		return "", nil, errors.New("username and password cannot be empty")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, ErrHashingFailed
	}

	account := &domain.Account{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Player:       *domain.NewPlayer(username, gender),
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return "", nil, ErrUserAlreadyExists
		}
		return "", nil, err
	}

	token, err := s.generateJWT(account)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	account.PasswordHash = ""
	return token, account, nil
}

// Login authenticates an existing account and issues a JWT.
func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.Account, error) {
	if username == "" || password == "" {
		return "", nil, errors.New("username and password cannot be empty")
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrAuthenticationFailed
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := s.generateJWT(account)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	account.PasswordHash = ""
	return token, account, nil
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(account *domain.Account) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		Username: account.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.Username,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "leveling-app",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}
	return signedToken, nil
}
