package localstore

import (
	"context"
	"time"

	"annotation-notes-be/internal/entity"
	"annotation-notes-be/internal/repository/contract"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"
)

type NotebookRepository struct {
	store *Store
}

func NewNotebookRepository(store *Store) contract.NotebookRepository {
	return &NotebookRepository{store: store}
}

func (r *NotebookRepository) FindAll(ctx context.Context) ([]*entity.Notebook, error) {
	var notebooks []*entity.Notebook
	err := r.store.db.View(func(tx *bolt.Tx) error {
		var err error
		notebooks, err = all[entity.Notebook](tx, notebooksBucket)
		return err
	})
	return notebooks, err
}

func (r *NotebookRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.Notebook, error) {
	var notebook *entity.Notebook
	err := r.store.db.View(func(tx *bolt.Tx) error {
		rec, err := get[entity.Notebook](tx, notebooksBucket, id)
		if rec != nil {
			notebook = &rec.Value
		}
		return err
	})
	return notebook, err
}

func (r *NotebookRepository) ExistsById(ctx context.Context, id uuid.UUID) (bool, error) {
	var found bool
	err := r.store.db.View(func(tx *bolt.Tx) error {
		found = exists(tx, notebooksBucket, id)
		return nil
	})
	return found, err
}

func (r *NotebookRepository) Save(ctx context.Context, notebook *entity.Notebook) error {
	now := time.Now()
	if notebook.Id == uuid.Nil {
		notebook.Id = uuid.New()
	}
	if notebook.CreatedAt.IsZero() {
		notebook.CreatedAt = now
	}
	notebook.UpdatedAt = &now

	return r.store.db.Update(func(tx *bolt.Tx) error {
		return put(tx, notebooksBucket, notebook.Id, *notebook)
	})
}

func (r *NotebookRepository) DeleteById(ctx context.Context, id uuid.UUID) error {
	return r.store.db.Update(func(tx *bolt.Tx) error {
		return remove(tx, notebooksBucket, id)
	})
}
