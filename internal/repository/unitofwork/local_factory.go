package unitofwork

import (
	"context"

	"annotation-notes-be/internal/repository/contract"
	"annotation-notes-be/internal/repository/localstore"
)

type LocalRepositoryFactory struct {
	store *localstore.Store
}

func NewLocalRepositoryFactory(store *localstore.Store) RepositoryFactory {
	return &LocalRepositoryFactory{store: store}
}

func (f *LocalRepositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return &localUnitOfWork{store: f.store}
}

type localUnitOfWork struct {
	store *localstore.Store
}

func (u *localUnitOfWork) UserRepository() contract.UserRepository {
	return localstore.NewUserRepository(u.store)
}

func (u *localUnitOfWork) NotebookRepository() contract.NotebookRepository {
	return localstore.NewNotebookRepository(u.store)
}

func (u *localUnitOfWork) AnnotationRepository() contract.AnnotationRepository {
	return localstore.NewAnnotationRepository(u.store)
}
