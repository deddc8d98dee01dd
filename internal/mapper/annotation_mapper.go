package mapper

import (
	"time"

	"annotation-notes-be/internal/entity"
	"annotation-notes-be/internal/model"

	"github.com/google/uuid"
)

type AnnotationMapper struct{}

func NewAnnotationMapper() *AnnotationMapper {
	return &AnnotationMapper{}
}

func (m *AnnotationMapper) ToEntity(a *model.Annotation) *entity.Annotation {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Annotation{
		Id:         a.Id,
		Title:      a.Title,
		Body:       a.Body,
		UserId:     copyID(a.UserId),
		NotebookId: copyID(a.NotebookId),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *AnnotationMapper) ToModel(a *entity.Annotation) *model.Annotation {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Annotation{
		Id:         a.Id,
		Title:      a.Title,
		Body:       a.Body,
		UserId:     copyID(a.UserId),
		NotebookId: copyID(a.NotebookId),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *AnnotationMapper) ToEntities(annotations []*model.Annotation) []*entity.Annotation {
	entities := make([]*entity.Annotation, len(annotations))
	for i, a := range annotations {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
