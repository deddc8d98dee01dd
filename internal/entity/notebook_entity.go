package entity

import (
	"time"

	"github.com/google/uuid"
)

type Notebook struct {
	Id        uuid.UUID
	Title     string
	UserId    *uuid.UUID // owner, optional
	CreatedAt time.Time
	UpdatedAt *time.Time
}
