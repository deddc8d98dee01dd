package implementation

import (
	"context"
	"errors"

	"annotation-notes-be/internal/entity"
	"annotation-notes-be/internal/mapper"
	"annotation-notes-be/internal/model"
	"annotation-notes-be/internal/repository/contract"
	"annotation-notes-be/internal/repository/scope"
	"annotation-notes-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnotationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnnotationMapper
}

func NewAnnotationRepository(db *gorm.DB) contract.AnnotationRepository {
	return &AnnotationRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnnotationMapper(),
	}
}

func (r *AnnotationRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Annotation, error) {
	var models []*model.Annotation
	if err := r.db.WithContext(ctx).Scopes(scope.OrderByCreatedAsc).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AnnotationRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Annotation, error) {
	var m model.Annotation
	query := specification.Apply(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AnnotationRepositoryImpl) ExistsById(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	query := specification.Apply(r.db.WithContext(ctx).Model(&model.Annotation{}), specification.ByID{ID: id})
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AnnotationRepositoryImpl) Save(ctx context.Context, annotation *entity.Annotation) error {
	m := r.mapper.ToModel(annotation)
	// Save() writes zero values too, so a cleared reference becomes NULL.
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*annotation = *r.mapper.ToEntity(m)
	return nil
}

func (r *AnnotationRepositoryImpl) DeleteById(ctx context.Context, id uuid.UUID) error {
	return specification.Apply(r.db.WithContext(ctx), specification.ByID{ID: id}).Delete(&model.Annotation{}).Error
}
