package memory

import (
	"context"
	"time"

	"annotation-notes-be/internal/entity"
	"annotation-notes-be/internal/repository/contract"

	"github.com/google/uuid"
)

type AnnotationRepository struct {
	store *Store
}

func NewAnnotationRepository(store *Store) contract.AnnotationRepository {
	return &AnnotationRepository{store: store}
}

func cloneAnnotation(a entity.Annotation) *entity.Annotation {
	a.UserId = copyID(a.UserId)
	a.NotebookId = copyID(a.NotebookId)
	a.UpdatedAt = copyTime(a.UpdatedAt)
	return &a
}

func (r *AnnotationRepository) FindAll(ctx context.Context) ([]*entity.Annotation, error) {
	annotations := r.store.annotations.all()
	result := make([]*entity.Annotation, len(annotations))
	for i, a := range annotations {
		result[i] = cloneAnnotation(a)
	}
	return result, nil
}

func (r *AnnotationRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.Annotation, error) {
	if a, found := r.store.annotations.get(id); found {
		return cloneAnnotation(a), nil
	}
	return nil, nil
}

func (r *AnnotationRepository) ExistsById(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.store.annotations.exists(id), nil
}

func (r *AnnotationRepository) Save(ctx context.Context, annotation *entity.Annotation) error {
	now := time.Now()
	if annotation.Id == uuid.Nil {
		annotation.Id = uuid.New()
	}
	if annotation.CreatedAt.IsZero() {
		annotation.CreatedAt = now
	}
	annotation.UpdatedAt = &now

	r.store.annotations.put(annotation.Id, *cloneAnnotation(*annotation))
	return nil
}

func (r *AnnotationRepository) DeleteById(ctx context.Context, id uuid.UUID) error {
	r.store.annotations.remove(id)
	return nil
}
