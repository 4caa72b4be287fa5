package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/HaqueArif/shine-on-server/internal/domain"
	"github.com/HaqueArif/shine-on-server/internal/repository"
)

// AuthService handles registration, login and session token issuance.
type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	jwtExpiry time.Duration
}

// NewAuthService creates an AuthService. The signing secret and token
// lifetime come from configuration and are fixed for the process lifetime.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExpiry time.Duration) (*AuthService, error) {
	if userRepo == nil {
		panic("UserRepository cannot be nil for AuthService")
	}
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT secret key cannot be empty")
	}
	if jwtExpiry <= 0 {
		jwtExpiry = 24 * time.Hour
	}
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		jwtExpiry: jwtExpiry,
	}, nil
}

// Register creates a new account with a bcrypt-hashed password.
// Returns ErrUserAlreadyExists when the email is already registered.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	logCtx := logrus.WithField("email", email)

	// Exact-match lookup; email uniqueness is the only registration rule.
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		logCtx.Warn("Registration failed: email already registered")
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		logCtx.WithError(err).Error("Database error while checking existing user")
		return nil, ErrInternalServer
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during registration")
		return nil, ErrInternalServer
	}

	user := &domain.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		// A concurrent registration can slip past the lookup; the unique
		// index reports it as a duplicate on insert.
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.WithError(err).Warn("Registration failed: duplicate email on insert")
			return nil, ErrUserAlreadyExists
		}
		logCtx.WithError(err).Error("Database error during user creation")
		return nil, ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID.Hex()).Info("User registered successfully")
	user.Password = ""
	return user, nil
}

// Login verifies credentials and issues a signed session token.
// Unknown email and wrong password both return ErrAuthenticationFailed so
// the response never reveals which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	logCtx := logrus.WithField("email", email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logCtx.Warn("Login attempt failed: user not found")
		} else {
			logCtx.WithError(err).Warn("Login attempt failed: error finding user")
		}
		return "", ErrAuthenticationFailed
	}
	if user == nil {
		logCtx.Warn("Login attempt failed: repository returned nil user without error")
		return "", ErrAuthenticationFailed
	}

	if !checkPassword(password, user.Password) {
		logCtx.Warn("Login attempt failed: invalid password")
		return "", ErrAuthenticationFailed
	}

	token, err := s.generateJWT(user.Email)
	if err != nil {
		logCtx.WithError(err).Error("Failed to generate JWT token during login")
		return "", ErrInternalServer
	}

	logCtx.Info("User logged in successfully")
	return token, nil
}

// VerifyToken validates a session token against the service's signing key and
// returns the email it was issued for. Expired or tampered tokens fail with
// ErrAuthenticationFailed.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", ErrAuthenticationFailed
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrAuthenticationFailed
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrAuthenticationFailed
	}
	return email, nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to generate hash from password: %w", err)
	}
	return string(bytes), nil
}

func checkPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// generateJWT signs a token carrying the account email and an expiry of
// issue time plus the configured duration. No other claims are embedded.
func (s *AuthService) generateJWT(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   now.Add(s.jwtExpiry).Unix(),
		"iat":   now.Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}
