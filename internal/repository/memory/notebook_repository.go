package memory

import (
	"context"
	"time"

	"annotation-notes-be/internal/entity"
	"annotation-notes-be/internal/repository/contract"

	"github.com/google/uuid"
)

type NotebookRepository struct {
	store *Store
}

func NewNotebookRepository(store *Store) contract.NotebookRepository {
	return &NotebookRepository{store: store}
}

func cloneNotebook(n entity.Notebook) *entity.Notebook {
	n.UserId = copyID(n.UserId)
	n.UpdatedAt = copyTime(n.UpdatedAt)
	return &n
}

func (r *NotebookRepository) FindAll(ctx context.Context) ([]*entity.Notebook, error) {
	notebooks := r.store.notebooks.all()
	result := make([]*entity.Notebook, len(notebooks))
	for i, n := range notebooks {
		result[i] = cloneNotebook(n)
	}
	return result, nil
}

func (r *NotebookRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.Notebook, error) {
	if n, found := r.store.notebooks.get(id); found {
		return cloneNotebook(n), nil
	}
	return nil, nil
}

func (r *NotebookRepository) ExistsById(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.store.notebooks.exists(id), nil
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

	r.store.notebooks.put(notebook.Id, *cloneNotebook(*notebook))
	return nil
}

func (r *NotebookRepository) DeleteById(ctx context.Context, id uuid.UUID) error {
	r.store.notebooks.remove(id)
	return nil
}
