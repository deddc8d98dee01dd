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

const msgNotebookNotFound = "Notebook not found"

type INotebookService interface {
	FindAll(ctx context.Context) ([]*entity.Notebook, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.Notebook, error)
	Save(ctx context.Context, req *dto.SaveNotebookRequest) (*entity.Notebook, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNotebookRequest) (*entity.Notebook, error)
	DeleteById(ctx context.Context, id uuid.UUID) error
}

type notebookService struct {
	uowFactory  unitofwork.RepositoryFactory
	userService IUserService
	dispatcher  events.Dispatcher
}

func NewNotebookService(
	uowFactory unitofwork.RepositoryFactory,
	userService IUserService,
	dispatcher events.Dispatcher,
) INotebookService {
	return &notebookService{
		uowFactory:  uowFactory,
		userService: userService,
		dispatcher:  dispatcher,
	}
}

func (c *notebookService) FindAll(ctx context.Context) ([]*entity.Notebook, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.NotebookRepository().FindAll(ctx)
}

func (c *notebookService) FindById(ctx context.Context, id uuid.UUID) (*entity.Notebook, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	notebook, err := uow.NotebookRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, apperr.NotFound(msgNotebookNotFound)
	}
	return notebook, nil
}

func (c *notebookService) Save(ctx context.Context, req *dto.SaveNotebookRequest) (*entity.Notebook, error) {
	notebook := &entity.Notebook{Title: req.Title}

	if ownerId, ok := req.UserId.Get(); ok {
		owner, err := c.userService.FindById(ctx, ownerId)
		if err != nil {
			return nil, err
		}
		notebook.UserId = &owner.Id
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotebookRepository().Save(ctx, notebook); err != nil {
		return nil, err
	}

	c.dispatcher.Dispatch(ctx, events.New(events.NotebookCreated, notebookPayload(notebook)))
	return notebook, nil
}

// Update merges req into the stored notebook. A null user_id does not clear
// the owner; it is handled exactly like an absent one.
func (c *notebookService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNotebookRequest) (*entity.Notebook, error) {
	notebook, err := c.FindById(ctx, id)
	if err != nil {
		return nil, err
	}

	if title, ok := req.Title.Get(); ok {
		notebook.Title = title
	}

	if ownerId, ok := req.UserId.Get(); ok {
		owner, err := c.userService.FindById(ctx, ownerId)
		if err != nil {
			return nil, err
		}
		notebook.UserId = &owner.Id
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotebookRepository().Save(ctx, notebook); err != nil {
		return nil, err
	}

	c.dispatcher.Dispatch(ctx, events.New(events.NotebookUpdated, notebookPayload(notebook)))
	return notebook, nil
}

// DeleteById leaves annotations pointing at the notebook untouched.
func (c *notebookService) DeleteById(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	repo := uow.NotebookRepository()

	exists, err := repo.ExistsById(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound(msgNotebookNotFound)
	}

	if err := repo.DeleteById(ctx, id); err != nil {
		return err
	}

	c.dispatcher.Dispatch(ctx, events.New(events.NotebookDeleted, map[string]interface{}{
		"id": id.String(),
	}))
	return nil
}
