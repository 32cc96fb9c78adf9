package ports

import (
	"context"

	"github.com/coworkly/SpaceBooker/internal/domain"
)

// UserDirectory resolves user records owned by the external user service.
// Implementations return domain.ErrUserNotFound when the record is absent
// and wrap domain.ErrDirectoryUnavailable on transport failures.
type UserDirectory interface {
	Get(ctx context.Context, id string) (*domain.User, error)
}

// SpaceDirectory resolves space records owned by the external space service.
// Implementations return domain.ErrSpaceNotFound when the record is absent
// and wrap domain.ErrDirectoryUnavailable on transport failures.
type SpaceDirectory interface {
	Get(ctx context.Context, id string) (*domain.Space, error)
}
