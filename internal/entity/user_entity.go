package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id    uuid.UUID
	Name  string
	Email string
	// Secret is opaque and compared verbatim at login.
	Secret    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
