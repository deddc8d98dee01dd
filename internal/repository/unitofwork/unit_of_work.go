package unitofwork

import (
	"annotation-notes-be/internal/repository/contract"
)

// UnitOfWork hands out repositories bound to one storage driver for the
// lifetime of a single service call.
type UnitOfWork interface {
	UserRepository() contract.UserRepository
	NotebookRepository() contract.NotebookRepository
	AnnotationRepository() contract.AnnotationRepository
}
