package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Annotation keeps user_id and notebook_id as plain indexed columns, without
// foreign key constraints.
type Annotation struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string         `gorm:"type:varchar(255)"`
	Body       string         `gorm:"type:text"`
	UserId     *uuid.UUID     `gorm:"type:uuid;index"`
	NotebookId *uuid.UUID     `gorm:"type:uuid;index"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Annotation) TableName() string {
	return "annotations"
}
