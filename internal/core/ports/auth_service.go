package ports

import (
	"context"

	"github.com/ser-kenya/ser-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, fullName, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.Principal, error)
}
