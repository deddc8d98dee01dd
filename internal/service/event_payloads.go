package service

import (
	"annotation-notes-be/internal/entity"

	"github.com/google/uuid"
)

// Payloads carry ids as strings so every sink encodes them the same way.
// Secrets never leave the user service.

func userPayload(u *entity.User) map[string]interface{} {
	return map[string]interface{}{
		"id":    u.Id.String(),
		"name":  u.Name,
		"email": u.Email,
	}
}

func notebookPayload(n *entity.Notebook) map[string]interface{} {
	return map[string]interface{}{
		"id":      n.Id.String(),
		"title":   n.Title,
		"user_id": idOrNil(n.UserId),
	}
}

func annotationPayload(a *entity.Annotation) map[string]interface{} {
	return map[string]interface{}{
		"id":          a.Id.String(),
		"title":       a.Title,
		"user_id":     idOrNil(a.UserId),
		"notebook_id": idOrNil(a.NotebookId),
	}
}

func idOrNil(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return id.String()
}
