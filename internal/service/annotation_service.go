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

const msgAnnotationNotFound = "Annotation not found"

type IAnnotationService interface {
	FindAll(ctx context.Context) ([]*entity.Annotation, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.Annotation, error)
	Save(ctx context.Context, req *dto.SaveAnnotationRequest) (*entity.Annotation, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAnnotationRequest) (*entity.Annotation, error)
	DeleteById(ctx context.Context, id uuid.UUID) error
}

type annotationService struct {
	uowFactory      unitofwork.RepositoryFactory
	userService     IUserService
	notebookService INotebookService
	dispatcher      events.Dispatcher
}

func NewAnnotationService(
	uowFactory unitofwork.RepositoryFactory,
	userService IUserService,
	notebookService INotebookService,
	dispatcher events.Dispatcher,
) IAnnotationService {
	return &annotationService{
		uowFactory:      uowFactory,
		userService:     userService,
		notebookService: notebookService,
		dispatcher:      dispatcher,
	}
}

func (c *annotationService) FindAll(ctx context.Context) ([]*entity.Annotation, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.AnnotationRepository().FindAll(ctx)
}

func (c *annotationService) FindById(ctx context.Context, id uuid.UUID) (*entity.Annotation, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	annotation, err := uow.AnnotationRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if annotation == nil {
		return nil, apperr.NotFound(msgAnnotationNotFound)
	}
	return annotation, nil
}

// Save requires an owner. The owner is resolved before the notebook so a
// missing owner never costs a notebook lookup.
func (c *annotationService) Save(ctx context.Context, req *dto.SaveAnnotationRequest) (*entity.Annotation, error) {
	ownerId, ok := req.UserId.Get()
	if !ok {
		return nil, apperr.NotFound(msgUserNotFound)
	}
	owner, err := c.userService.FindById(ctx, ownerId)
	if err != nil {
		return nil, err
	}

	annotation := &entity.Annotation{
		Title:  req.Title,
		Body:   req.Body,
		UserId: &owner.Id,
	}

	if notebookId, ok := req.NotebookId.Get(); ok {
		notebook, err := c.notebookService.FindById(ctx, notebookId)
		if err != nil {
			return nil, err
		}
		annotation.NotebookId = &notebook.Id
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AnnotationRepository().Save(ctx, annotation); err != nil {
		return nil, err
	}

	c.dispatcher.Dispatch(ctx, events.New(events.AnnotationCreated, annotationPayload(annotation)))
	return annotation, nil
}

// Update merges req into the stored annotation. notebook_id: null detaches the
// annotation from its notebook; user_id: null is ignored like an absent field.
func (c *annotationService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAnnotationRequest) (*entity.Annotation, error) {
	annotation, err := c.FindById(ctx, id)
	if err != nil {
		return nil, err
	}

	if title, ok := req.Title.Get(); ok {
		annotation.Title = title
	}
	if body, ok := req.Body.Get(); ok {
		annotation.Body = body
	}

	if ownerId, ok := req.UserId.Get(); ok {
		owner, err := c.userService.FindById(ctx, ownerId)
		if err != nil {
			return nil, err
		}
		annotation.UserId = &owner.Id
	}

	switch {
	case req.NotebookId.IsNull():
		annotation.NotebookId = nil
	case req.NotebookId.IsSet():
		notebookId, _ := req.NotebookId.Get()
		notebook, err := c.notebookService.FindById(ctx, notebookId)
		if err != nil {
			return nil, err
		}
		annotation.NotebookId = &notebook.Id
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AnnotationRepository().Save(ctx, annotation); err != nil {
		return nil, err
	}

	c.dispatcher.Dispatch(ctx, events.New(events.AnnotationUpdated, annotationPayload(annotation)))
	return annotation, nil
}

func (c *annotationService) DeleteById(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AnnotationRepository()

	exists, err := repo.ExistsById(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound(msgAnnotationNotFound)
	}

	if err := repo.DeleteById(ctx, id); err != nil {
		return err
	}

	c.dispatcher.Dispatch(ctx, events.New(events.AnnotationDeleted, map[string]interface{}{
		"id": id.String(),
	}))
	return nil
}
