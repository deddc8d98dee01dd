package unitofwork

import (
	"annotation-notes-be/internal/repository/contract"
	"annotation-notes-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.db)
}

func (u *UnitOfWorkImpl) NotebookRepository() contract.NotebookRepository {
	return implementation.NewNotebookRepository(u.db)
}

func (u *UnitOfWorkImpl) AnnotationRepository() contract.AnnotationRepository {
	return implementation.NewAnnotationRepository(u.db)
}
