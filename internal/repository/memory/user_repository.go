package memory

import (
	"context"
	"fmt"
	"time"

	"annotation-notes-be/internal/entity"
	"annotation-notes-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) contract.UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	users := r.store.users.all()
	result := make([]*entity.User, len(users))
	for i := range users {
		result[i] = &users[i]
	}
	return result, nil
}

func (r *UserRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if u, found := r.store.users.get(id); found {
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.store.users.all() {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) ExistsById(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.store.users.exists(id), nil
}

func (r *UserRepository) Save(ctx context.Context, user *entity.User) error {
	r.store.userWrites.Lock()
	defer r.store.userWrites.Unlock()

	for _, existing := range r.store.users.all() {
		if existing.Email == user.Email && existing.Id != user.Id {
			return fmt.Errorf("users.email %q: %w", user.Email, gorm.ErrDuplicatedKey)
		}
	}

	now := time.Now()
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	r.store.users.put(user.Id, *user)
	return nil
}

func (r *UserRepository) DeleteById(ctx context.Context, id uuid.UUID) error {
	r.store.users.remove(id)
	return nil
}
