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

type NotebookRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NotebookMapper
}

func NewNotebookRepository(db *gorm.DB) contract.NotebookRepository {
	return &NotebookRepositoryImpl{
		db:     db,
		mapper: mapper.NewNotebookMapper(),
	}
}

func (r *NotebookRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Notebook, error) {
	var models []*model.Notebook
	if err := r.db.WithContext(ctx).Scopes(scope.OrderByCreatedAsc).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NotebookRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Notebook, error) {
	var m model.Notebook
	query := specification.Apply(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NotebookRepositoryImpl) ExistsById(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	query := specification.Apply(r.db.WithContext(ctx).Model(&model.Notebook{}), specification.ByID{ID: id})
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *NotebookRepositoryImpl) Save(ctx context.Context, notebook *entity.Notebook) error {
	m := r.mapper.ToModel(notebook)
	// Save() writes zero values too, so a cleared reference becomes NULL.
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*notebook = *r.mapper.ToEntity(m)
	return nil
}

func (r *NotebookRepositoryImpl) DeleteById(ctx context.Context, id uuid.UUID) error {
	return specification.Apply(r.db.WithContext(ctx), specification.ByID{ID: id}).Delete(&model.Notebook{}).Error
}
