package ports

import (
	"context"

	"github.com/ser-kenya/ser-api/internal/core/domain"
)

// AuthRepository defines the interface for principal persistence. Admin and
// user accounts live in disjoint collections and are looked up separately.
type AuthRepository interface {
	FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
}
