package mocks

import (
	"context"

	"annotation-notes-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AnnotationRepository struct {
	mock.Mock
}

func (m *AnnotationRepository) FindAll(ctx context.Context) ([]*entity.Annotation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Annotation), args.Error(1)
}

func (m *AnnotationRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.Annotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Annotation), args.Error(1)
}

func (m *AnnotationRepository) ExistsById(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *AnnotationRepository) Save(ctx context.Context, annotation *entity.Annotation) error {
	return m.Called(ctx, annotation).Error(0)
}

func (m *AnnotationRepository) DeleteById(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
