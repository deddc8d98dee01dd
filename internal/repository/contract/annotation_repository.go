package contract

import (
	"context"

	"annotation-notes-be/internal/entity"

	"github.com/google/uuid"
)

type AnnotationRepository interface {
	FindAll(ctx context.Context) ([]*entity.Annotation, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.Annotation, error)
	ExistsById(ctx context.Context, id uuid.UUID) (bool, error)
	Save(ctx context.Context, annotation *entity.Annotation) error
	DeleteById(ctx context.Context, id uuid.UUID) error
}
