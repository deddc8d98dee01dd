package mocks

import (
	"context"

	"annotation-notes-be/internal/repository/contract"
	"annotation-notes-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/mock"
)

// RepositoryFactory hands out the same mocked repositories for every unit of work.
type RepositoryFactory struct {
	Users       *UserRepository
	Notebooks   *NotebookRepository
	Annotations *AnnotationRepository
}

func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{
		Users:       new(UserRepository),
		Notebooks:   new(NotebookRepository),
		Annotations: new(AnnotationRepository),
	}
}

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f
}

func (f *RepositoryFactory) UserRepository() contract.UserRepository {
	return f.Users
}

func (f *RepositoryFactory) NotebookRepository() contract.NotebookRepository {
	return f.Notebooks
}

func (f *RepositoryFactory) AnnotationRepository() contract.AnnotationRepository {
	return f.Annotations
}

// AssertExpectations checks every repository mock at once.
func (f *RepositoryFactory) AssertExpectations(t mock.TestingT) {
	f.Users.AssertExpectations(t)
	f.Notebooks.AssertExpectations(t)
	f.Annotations.AssertExpectations(t)
}
