package localstore

import (
	"context"
	"time"

	"annotation-notes-be/internal/entity"
	"annotation-notes-be/internal/repository/contract"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"
)

type AnnotationRepository struct {
	store *Store
}

func NewAnnotationRepository(store *Store) contract.AnnotationRepository {
	return &AnnotationRepository{store: store}
}

func (r *AnnotationRepository) FindAll(ctx context.Context) ([]*entity.Annotation, error) {
	var annotations []*entity.Annotation
	err := r.store.db.View(func(tx *bolt.Tx) error {
		var err error
		annotations, err = all[entity.Annotation](tx, annotationsBucket)
		return err
	})
	return annotations, err
}

func (r *AnnotationRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.Annotation, error) {
	var annotation *entity.Annotation
	err := r.store.db.View(func(tx *bolt.Tx) error {
		rec, err := get[entity.Annotation](tx, annotationsBucket, id)
		if rec != nil {
			annotation = &rec.Value
		}
		return err
	})
	return annotation, err
}

func (r *AnnotationRepository) ExistsById(ctx context.Context, id uuid.UUID) (bool, error) {
	var found bool
	err := r.store.db.View(func(tx *bolt.Tx) error {
		found = exists(tx, annotationsBucket, id)
		return nil
	})
	return found, err
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

	return r.store.db.Update(func(tx *bolt.Tx) error {
		return put(tx, annotationsBucket, annotation.Id, *annotation)
	})
}

func (r *AnnotationRepository) DeleteById(ctx context.Context, id uuid.UUID) error {
	return r.store.db.Update(func(tx *bolt.Tx) error {
		return remove(tx, annotationsBucket, id)
	})
}
