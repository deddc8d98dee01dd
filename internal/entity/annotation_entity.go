package entity

import (
	"time"

	"github.com/google/uuid"
)

// Annotation references its owner and notebook by id only. Deleting either
// leaves the reference dangling; nothing cascades.
type Annotation struct {
	Id         uuid.UUID
	Title      string
	Body       string
	UserId     *uuid.UUID
	NotebookId *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
