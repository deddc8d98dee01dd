package localstore

import (
	"context"
	"fmt"
	"time"

	"annotation-notes-be/internal/entity"
	"annotation-notes-be/internal/repository/contract"

	"github.com/boltdb/bolt"
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
	var users []*entity.User
	err := r.store.db.View(func(tx *bolt.Tx) error {
		var err error
		users, err = all[entity.User](tx, usersBucket)
		return err
	})
	return users, err
}

func (r *UserRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user *entity.User
	err := r.store.db.View(func(tx *bolt.Tx) error {
		rec, err := get[entity.User](tx, usersBucket, id)
		if rec != nil {
			user = &rec.Value
		}
		return err
	})
	return user, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user *entity.User
	err := r.store.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(usersByEmail).Get([]byte(email))
		if raw == nil {
			return nil
		}
		id, err := uuid.FromBytes(raw)
		if err != nil {
			return err
		}
		rec, err := get[entity.User](tx, usersBucket, id)
		if rec != nil {
			user = &rec.Value
		}
		return err
	})
	return user, err
}

func (r *UserRepository) ExistsById(ctx context.Context, id uuid.UUID) (bool, error) {
	var found bool
	err := r.store.db.View(func(tx *bolt.Tx) error {
		found = exists(tx, usersBucket, id)
		return nil
	})
	return found, err
}

// Save keeps the users_by_email index in the same transaction as the record.
func (r *UserRepository) Save(ctx context.Context, user *entity.User) error {
	return r.store.db.Update(func(tx *bolt.Tx) error {
		index := tx.Bucket(usersByEmail)

		if owner := index.Get([]byte(user.Email)); owner != nil && (user.Id == uuid.Nil || !bytesEqualID(owner, user.Id)) {
			return fmt.Errorf("users.email %q: %w", user.Email, gorm.ErrDuplicatedKey)
		}

		now := time.Now()
		if user.Id == uuid.Nil {
			user.Id = uuid.New()
		} else {
			previous, err := get[entity.User](tx, usersBucket, user.Id)
			if err != nil {
				return err
			}
			if previous != nil && previous.Value.Email != user.Email {
				if err := index.Delete([]byte(previous.Value.Email)); err != nil {
					return err
				}
			}
		}
		if user.CreatedAt.IsZero() {
			user.CreatedAt = now
		}
		user.UpdatedAt = now

		if err := index.Put([]byte(user.Email), user.Id[:]); err != nil {
			return err
		}
		return put(tx, usersBucket, user.Id, *user)
	})
}

func (r *UserRepository) DeleteById(ctx context.Context, id uuid.UUID) error {
	return r.store.db.Update(func(tx *bolt.Tx) error {
		rec, err := get[entity.User](tx, usersBucket, id)
		if err != nil || rec == nil {
			return err
		}
		if err := tx.Bucket(usersByEmail).Delete([]byte(rec.Value.Email)); err != nil {
			return err
		}
		return remove(tx, usersBucket, id)
	})
}

func bytesEqualID(raw []byte, id uuid.UUID) bool {
	other, err := uuid.FromBytes(raw)
	return err == nil && other == id
}
