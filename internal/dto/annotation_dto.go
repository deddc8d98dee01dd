package dto

import (
	"time"

	"annotation-notes-be/internal/pkg/optional"

	"github.com/google/uuid"
)

type SaveAnnotationRequest struct {
	Title      string                    `json:"title"`
	Body       string                    `json:"body"`
	UserId     optional.Value[uuid.UUID] `json:"user_id"`
	NotebookId optional.Value[uuid.UUID] `json:"notebook_id"`
}

// UpdateAnnotationRequest merges into the stored annotation. notebook_id: null
// detaches the annotation from its notebook, while user_id: null is ignored.
type UpdateAnnotationRequest struct {
	Title      optional.Value[string]    `json:"title"`
	Body       optional.Value[string]    `json:"body"`
	UserId     optional.Value[uuid.UUID] `json:"user_id"`
	NotebookId optional.Value[uuid.UUID] `json:"notebook_id"`
}

type AnnotationResponse struct {
	Id         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	UserId     *uuid.UUID `json:"user_id"`
	NotebookId *uuid.UUID `json:"notebook_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}
