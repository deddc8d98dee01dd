package contract

import (
	"context"

	"annotation-notes-be/internal/entity"

	"github.com/google/uuid"
)

type NotebookRepository interface {
	FindAll(ctx context.Context) ([]*entity.Notebook, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.Notebook, error)
	ExistsById(ctx context.Context, id uuid.UUID) (bool, error)
	Save(ctx context.Context, notebook *entity.Notebook) error // upsert; assigns Id when zero
	DeleteById(ctx context.Context, id uuid.UUID) error
}
