package dto

import (
	"time"

	"annotation-notes-be/internal/pkg/optional"

	"github.com/google/uuid"
)

type SaveNotebookRequest struct {
	Title  string                    `json:"title"`
	UserId optional.Value[uuid.UUID] `json:"user_id"`
}

// UpdateNotebookRequest merges into the stored notebook. An absent or null
// user_id leaves the owner as it is.
type UpdateNotebookRequest struct {
	Title  optional.Value[string]    `json:"title"`
	UserId optional.Value[uuid.UUID] `json:"user_id"`
}

type NotebookResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	UserId    *uuid.UUID `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
