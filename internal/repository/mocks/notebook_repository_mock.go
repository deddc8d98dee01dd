package mocks

import (
	"context"

	"annotation-notes-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type NotebookRepository struct {
	mock.Mock
}

func (m *NotebookRepository) FindAll(ctx context.Context) ([]*entity.Notebook, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Notebook), args.Error(1)
}

func (m *NotebookRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.Notebook, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Notebook), args.Error(1)
}

func (m *NotebookRepository) ExistsById(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *NotebookRepository) Save(ctx context.Context, notebook *entity.Notebook) error {
	return m.Called(ctx, notebook).Error(0)
}

func (m *NotebookRepository) DeleteById(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
