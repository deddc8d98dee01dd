package memory

import (
	"context"
	"testing"

	"annotation-notes-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_SaveAssignsIdAndRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	alice := &entity.User{Name: "Alice", Email: "a@x.io", Secret: "pw"}
	require.NoError(t, repo.Save(ctx, alice))
	assert.NotEqual(t, uuid.Nil, alice.Id)
	assert.False(t, alice.CreatedAt.IsZero())

	err := repo.Save(ctx, &entity.User{Name: "Other", Email: "a@x.io", Secret: "pw"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Re-saving the same user with its own email is an update, not a conflict.
	alice.Name = "Alice B"
	require.NoError(t, repo.Save(ctx, alice))

	found, err := repo.FindByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Alice B", found.Name)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserRepository_MissingLookups(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	u, err := repo.FindById(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, u)

	u, err = repo.FindByEmail(ctx, "nobody@x.io")
	assert.NoError(t, err)
	assert.Nil(t, u)

	exists, err := repo.ExistsById(ctx, uuid.New())
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestNotebookRepository_FindAllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewNotebookRepository(NewStore())

	titles := []string{"Physics", "Chemistry", "Biology"}
	for _, title := range titles {
		require.NoError(t, repo.Save(ctx, &entity.Notebook{Title: title}))
	}

	// Updating the first one must not move it to the end.
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	first := all[0]
	first.Title = "Physics II"
	require.NoError(t, repo.Save(ctx, first))

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Physics II", all[0].Title)
	assert.Equal(t, "Chemistry", all[1].Title)
	assert.Equal(t, "Biology", all[2].Title)
}

func TestNotebookRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewNotebookRepository(NewStore())

	owner := uuid.New()
	n := &entity.Notebook{Title: "Physics", UserId: &owner}
	require.NoError(t, repo.Save(ctx, n))

	loaded, err := repo.FindById(ctx, n.Id)
	require.NoError(t, err)
	*loaded.UserId = uuid.New()
	loaded.Title = "changed"

	again, err := repo.FindById(ctx, n.Id)
	require.NoError(t, err)
	assert.Equal(t, "Physics", again.Title)
	assert.Equal(t, owner, *again.UserId)
}

func TestAnnotationRepository_ClearAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewAnnotationRepository(NewStore())

	notebook := uuid.New()
	a := &entity.Annotation{Title: "Newton", Body: "F=ma", NotebookId: &notebook}
	require.NoError(t, repo.Save(ctx, a))
	assert.NotNil(t, a.UpdatedAt)

	a.NotebookId = nil
	require.NoError(t, repo.Save(ctx, a))

	loaded, err := repo.FindById(ctx, a.Id)
	require.NoError(t, err)
	assert.Nil(t, loaded.NotebookId)

	require.NoError(t, repo.DeleteById(ctx, a.Id))
	exists, err := repo.ExistsById(ctx, a.Id)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting something that is already gone is a no-op.
	assert.NoError(t, repo.DeleteById(ctx, a.Id))
}
