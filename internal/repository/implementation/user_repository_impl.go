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

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context) ([]*entity.User, error) {
	var models []*model.User
	if err := r.db.WithContext(ctx).Scopes(scope.OrderByCreatedAsc).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *UserRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, specification.ByEmail{Email: email})
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	if err := specification.Apply(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserRepositoryImpl) ExistsById(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	query := specification.Apply(r.db.WithContext(ctx).Model(&model.User{}), specification.ByID{ID: id})
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save inserts when Id is zero (the database assigns it) and updates every
// column otherwise.
func (r *UserRepositoryImpl) Save(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) DeleteById(ctx context.Context, id uuid.UUID) error {
	return specification.Apply(r.db.WithContext(ctx), specification.ByID{ID: id}).Delete(&model.User{}).Error
}
