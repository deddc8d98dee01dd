package contract

import (
	"context"

	"annotation-notes-be/internal/entity"

	"github.com/google/uuid"
)

// UserRepository reports a taken email on Save as gorm.ErrDuplicatedKey.
type UserRepository interface {
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.User, error) // nil, nil when missing
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsById(ctx context.Context, id uuid.UUID) (bool, error)
	Save(ctx context.Context, user *entity.User) error
	DeleteById(ctx context.Context, id uuid.UUID) error
}
