package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ser-kenya/ser-api/internal/core/domain"
	"github.com/ser-kenya/ser-api/internal/core/ports"
)

// AuthService implements registration and login across the two principal
// classes. The admin store is always consulted first: if the same email
// exists in both classes, the admin identity wins the login.
type AuthService struct {
	repo      ports.AuthRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AuthRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 8 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a new user-class principal. There is no public path to
// an admin account; those are provisioned directly in the store.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (*domain.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = normalizeEmail(email)
	if fullName == "" || email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login resolves the email against the admin store first and the user
// store second, verifies the password, and returns a signed token plus
// the resolved principal. Every authentication miss — unknown email or
// wrong password, in either class — yields the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Principal, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	principal, hash, err := s.findPrincipal(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(principal)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, principal, nil
}

func (s *AuthService) findPrincipal(ctx context.Context, email string) (*domain.Principal, string, error) {
	admin, err := s.repo.FindAdminByEmail(ctx, email)
	switch {
	case err == nil:
		p := &domain.Principal{ID: admin.ID, Email: admin.Email, Role: domain.RoleAdmin}
		return p, admin.PasswordHash, nil
	case !errors.Is(err, domain.ErrPrincipalNotFound):
		return nil, "", err
	}

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrPrincipalNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	p := &domain.Principal{ID: user.ID, Email: user.Email, Role: domain.RoleUser, FullName: user.FullName}
	return p, user.PasswordHash, nil
}

func (s *AuthService) generateToken(p *domain.Principal) (string, error) {
	claims := jwt.MapClaims{
		"id":    p.ID,
		"email": p.Email,
		"role":  p.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	if p.FullName != "" {
		claims["full_name"] = p.FullName
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
