package service

import (
	"context"
	"testing"

	"annotation-notes-be/internal/dto"
	"annotation-notes-be/internal/entity"
	"annotation-notes-be/internal/pkg/apperr"
	"annotation-notes-be/internal/pkg/optional"
	"annotation-notes-be/internal/repository/mocks"
	"annotation-notes-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAnnotationService(f *mocks.RepositoryFactory, d events.Dispatcher) IAnnotationService {
	users := NewUserService(f, events.NopDispatcher{})
	notebooks := NewNotebookService(f, users, events.NopDispatcher{})
	return NewAnnotationService(f, users, notebooks, d)
}

func TestAnnotationService_FindById_NotFound(t *testing.T) {
	f := mocks.NewRepositoryFactory()
	id := uuid.New()
	f.Annotations.On("FindById", mock.Anything, id).Return(nil, nil)

	_, err := newAnnotationService(f, events.NopDispatcher{}).FindById(context.Background(), id)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Contains(t, err.Error(), "Annotation not found")
}

func TestAnnotationService_Save_OwnerIsMandatory(t *testing.T) {
	notebookId := uuid.New()
	missing := uuid.New()

	tests := []struct {
		name  string
		owner optional.Value[uuid.UUID]
	}{
		{name: "absent", owner: optional.Value[uuid.UUID]{}},
		{name: "null", owner: optional.Null[uuid.UUID]()},
		{name: "unknown", owner: optional.Of(missing)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mocks.NewRepositoryFactory()
			f.Users.On("FindById", mock.Anything, missing).Return(nil, nil).Maybe()

			d := &capturingDispatcher{}
			_, err := newAnnotationService(f, d).Save(context.Background(), &dto.SaveAnnotationRequest{
				Title:      "T",
				Body:       "B",
				UserId:     tt.owner,
				NotebookId: optional.Of(notebookId),
			})

			assert.ErrorIs(t, err, apperr.ErrNotFound)
			assert.Equal(t, "User not found", err.Error())
			f.Annotations.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			f.Notebooks.AssertNotCalled(t, "FindById", mock.Anything, mock.Anything)
			assert.Empty(t, d.events)
		})
	}
}

func TestAnnotationService_Save_UnknownNotebook(t *testing.T) {
	f := mocks.NewRepositoryFactory()
	owner := &entity.User{Id: uuid.New()}
	missing := uuid.New()
	f.Users.On("FindById", mock.Anything, owner.Id).Return(owner, nil)
	f.Notebooks.On("FindById", mock.Anything, missing).Return(nil, nil)

	_, err := newAnnotationService(f, events.NopDispatcher{}).Save(context.Background(), &dto.SaveAnnotationRequest{
		Title:      "T",
		Body:       "B",
		UserId:     optional.Of(owner.Id),
		NotebookId: optional.Of(missing),
	})

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, "Notebook not found", err.Error())
	f.Annotations.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAnnotationService_Save_WithoutNotebook(t *testing.T) {
	f := mocks.NewRepositoryFactory()
	owner := &entity.User{Id: uuid.New()}
	f.Users.On("FindById", mock.Anything, owner.Id).Return(owner, nil)

	var saved *entity.Annotation
	f.Annotations.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*entity.Annotation)
	}).Return(nil)

	d := &capturingDispatcher{}
	result, err := newAnnotationService(f, d).Save(context.Background(), &dto.SaveAnnotationRequest{
		Title:  " T ",
		Body:   "B",
		UserId: optional.Of(owner.Id),
	})

	require.NoError(t, err)
	assert.Same(t, saved, result)
	assert.Equal(t, " T ", saved.Title)
	assert.Equal(t, "B", saved.Body)
	assert.Equal(t, owner.Id, *saved.UserId)
	assert.Nil(t, saved.NotebookId)
	f.Notebooks.AssertNotCalled(t, "FindById", mock.Anything, mock.Anything)
	assert.Equal(t, []string{events.AnnotationCreated}, d.types())
}

func TestAnnotationService_Save_WithNotebook(t *testing.T) {
	f := mocks.NewRepositoryFactory()
	owner := &entity.User{Id: uuid.New()}
	notebook := &entity.Notebook{Id: uuid.New(), Title: "Physics"}
	f.Users.On("FindById", mock.Anything, owner.Id).Return(owner, nil)
	f.Notebooks.On("FindById", mock.Anything, notebook.Id).Return(notebook, nil)
	f.Annotations.On("Save", mock.Anything, mock.Anything).Return(nil)

	result, err := newAnnotationService(f, events.NopDispatcher{}).Save(context.Background(), &dto.SaveAnnotationRequest{
		Title:      "Titulo",
		Body:       "Corpo",
		UserId:     optional.Of(owner.Id),
		NotebookId: optional.Of(notebook.Id),
	})

	require.NoError(t, err)
	assert.Equal(t, "Titulo", result.Title)
	assert.Equal(t, "Corpo", result.Body)
	assert.Equal(t, owner.Id, *result.UserId)
	assert.Equal(t, notebook.Id, *result.NotebookId)
	f.AssertExpectations(t)
}

func TestAnnotationService_Update(t *testing.T) {
	originalOwner := uuid.New()
	originalNotebook := uuid.New()
	otherNotebook := &entity.Notebook{Id: uuid.New()}
	otherOwner := &entity.User{Id: uuid.New()}

	tests := []struct {
		name         string
		req          dto.UpdateAnnotationRequest
		wantTitle    string
		wantBody     string
		wantOwner    uuid.UUID
		wantNotebook *uuid.UUID
	}{
		{
			name:         "empty draft keeps everything",
			req:          dto.UpdateAnnotationRequest{},
			wantTitle:    "Newton",
			wantBody:     "F=ma",
			wantOwner:    originalOwner,
			wantNotebook: &originalNotebook,
		},
		{
			name:         "title and body",
			req:          dto.UpdateAnnotationRequest{Title: optional.Of("Kepler"), Body: optional.Of("")},
			wantTitle:    "Kepler",
			wantBody:     "",
			wantOwner:    originalOwner,
			wantNotebook: &originalNotebook,
		},
		{
			name:         "null notebook clears it",
			req:          dto.UpdateAnnotationRequest{NotebookId: optional.Null[uuid.UUID]()},
			wantTitle:    "Newton",
			wantBody:     "F=ma",
			wantOwner:    originalOwner,
			wantNotebook: nil,
		},
		{
			name:         "null owner is ignored",
			req:          dto.UpdateAnnotationRequest{UserId: optional.Null[uuid.UUID]()},
			wantTitle:    "Newton",
			wantBody:     "F=ma",
			wantOwner:    originalOwner,
			wantNotebook: &originalNotebook,
		},
		{
			name: "new references are resolved",
			req: dto.UpdateAnnotationRequest{
				UserId:     optional.Of(otherOwner.Id),
				NotebookId: optional.Of(otherNotebook.Id),
			},
			wantTitle:    "Newton",
			wantBody:     "F=ma",
			wantOwner:    otherOwner.Id,
			wantNotebook: &otherNotebook.Id,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, notebook := originalOwner, originalNotebook
			stored := &entity.Annotation{Id: uuid.New(), Title: "Newton", Body: "F=ma", UserId: &owner, NotebookId: &notebook}

			f := mocks.NewRepositoryFactory()
			f.Annotations.On("FindById", mock.Anything, stored.Id).Return(stored, nil)
			f.Annotations.On("Save", mock.Anything, mock.Anything).Return(nil)
			f.Users.On("FindById", mock.Anything, otherOwner.Id).Return(otherOwner, nil).Maybe()
			f.Notebooks.On("FindById", mock.Anything, otherNotebook.Id).Return(otherNotebook, nil).Maybe()

			d := &capturingDispatcher{}
			got, err := newAnnotationService(f, d).Update(context.Background(), stored.Id, &tt.req)

			require.NoError(t, err)
			assert.Equal(t, stored.Id, got.Id)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantBody, got.Body)
			require.NotNil(t, got.UserId)
			assert.Equal(t, tt.wantOwner, *got.UserId)
			assert.Equal(t, tt.wantNotebook, got.NotebookId)
			assert.Equal(t, []string{events.AnnotationUpdated}, d.types())
		})
	}
}

func TestAnnotationService_Update_Failures(t *testing.T) {
	t.Run("missing annotation", func(t *testing.T) {
		f := mocks.NewRepositoryFactory()
		id := uuid.New()
		f.Annotations.On("FindById", mock.Anything, id).Return(nil, nil)

		_, err := newAnnotationService(f, events.NopDispatcher{}).Update(context.Background(), id, &dto.UpdateAnnotationRequest{})

		assert.Equal(t, "Annotation not found", apperr.Reason(err))
		f.Annotations.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown notebook", func(t *testing.T) {
		f := mocks.NewRepositoryFactory()
		stored := &entity.Annotation{Id: uuid.New()}
		missing := uuid.New()
		f.Annotations.On("FindById", mock.Anything, stored.Id).Return(stored, nil)
		f.Notebooks.On("FindById", mock.Anything, missing).Return(nil, nil)

		_, err := newAnnotationService(f, events.NopDispatcher{}).Update(context.Background(), stored.Id, &dto.UpdateAnnotationRequest{
			NotebookId: optional.Of(missing),
		})

		assert.Equal(t, "Notebook not found", apperr.Reason(err))
		f.Annotations.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown owner", func(t *testing.T) {
		f := mocks.NewRepositoryFactory()
		stored := &entity.Annotation{Id: uuid.New()}
		missing := uuid.New()
		f.Annotations.On("FindById", mock.Anything, stored.Id).Return(stored, nil)
		f.Users.On("FindById", mock.Anything, missing).Return(nil, nil)

		_, err := newAnnotationService(f, events.NopDispatcher{}).Update(context.Background(), stored.Id, &dto.UpdateAnnotationRequest{
			UserId: optional.Of(missing),
		})

		assert.Equal(t, "User not found", apperr.Reason(err))
		f.Annotations.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAnnotationService_DeleteById(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		f := mocks.NewRepositoryFactory()
		id := uuid.New()
		f.Annotations.On("ExistsById", mock.Anything, id).Return(false, nil)

		d := &capturingDispatcher{}
		err := newAnnotationService(f, d).DeleteById(context.Background(), id)

		assert.ErrorIs(t, err, apperr.ErrNotFound)
		assert.Equal(t, "Annotation not found", err.Error())
		f.Annotations.AssertNotCalled(t, "DeleteById", mock.Anything, mock.Anything)
		assert.Empty(t, d.events)
	})

	t.Run("existing", func(t *testing.T) {
		f := mocks.NewRepositoryFactory()
		id := uuid.New()
		f.Annotations.On("ExistsById", mock.Anything, id).Return(true, nil)
		f.Annotations.On("DeleteById", mock.Anything, id).Return(nil)

		d := &capturingDispatcher{}
		require.NoError(t, newAnnotationService(f, d).DeleteById(context.Background(), id))

		assert.Equal(t, []string{events.AnnotationDeleted}, d.types())
		f.AssertExpectations(t)
	})
}
