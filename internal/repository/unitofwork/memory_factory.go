package unitofwork

import (
	"context"

	"annotation-notes-be/internal/repository/contract"
	"annotation-notes-be/internal/repository/memory"
)

type MemoryRepositoryFactory struct {
	store *memory.Store
}

func NewMemoryRepositoryFactory(store *memory.Store) RepositoryFactory {
	return &MemoryRepositoryFactory{store: store}
}

func (f *MemoryRepositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return &memoryUnitOfWork{store: f.store}
}

type memoryUnitOfWork struct {
	store *memory.Store
}

func (u *memoryUnitOfWork) UserRepository() contract.UserRepository {
	return memory.NewUserRepository(u.store)
}

func (u *memoryUnitOfWork) NotebookRepository() contract.NotebookRepository {
	return memory.NewNotebookRepository(u.store)
}

func (u *memoryUnitOfWork) AnnotationRepository() contract.AnnotationRepository {
	return memory.NewAnnotationRepository(u.store)
}
