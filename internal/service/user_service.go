package service

import (
	"context"

	"annotation-notes-be/internal/dto"
	"annotation-notes-be/internal/entity"
	"annotation-notes-be/internal/pkg/apperr"
	"annotation-notes-be/internal/repository/unitofwork"
	"annotation-notes-be/pkg/events"

	"github.com/google/uuid"
)

const (
	msgUserNotFound       = "User not found"
	msgInvalidCredentials = "invalid email or password"
)

type IUserService interface {
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Save(ctx context.Context, req *dto.RegisterUserRequest) (*entity.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*entity.User, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	dispatcher events.Dispatcher
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, dispatcher events.Dispatcher) IUserService {
	return &userService{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

func (s *userService) FindAll(ctx context.Context) ([]*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().FindAll(ctx)
}

func (s *userService) FindById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound(msgUserNotFound)
	}
	return user, nil
}

// Save registers a user. A taken email surfaces as the storage error itself.
func (s *userService) Save(ctx context.Context, req *dto.RegisterUserRequest) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user := &entity.User{
		Name:   req.Name,
		Email:  req.Email,
		Secret: req.Password,
	}
	if err := uow.UserRepository().Save(ctx, user); err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, events.New(events.UserRegistered, userPayload(user)))
	return user, nil
}

// Login answers with the same error for an unknown email and a wrong secret.
func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Secret != req.Password {
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}
	return user, nil
}
