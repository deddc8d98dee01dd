package mapper

import (
	"annotation-notes-be/internal/dto"
	"annotation-notes-be/internal/entity"
)

func ToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:        u.Id,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func ToUserResponses(users []*entity.User) []*dto.UserResponse {
	res := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, ToUserResponse(u))
	}
	return res
}

func ToNotebookResponse(n *entity.Notebook) *dto.NotebookResponse {
	return &dto.NotebookResponse{
		Id:        n.Id,
		Title:     n.Title,
		UserId:    n.UserId,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func ToNotebookResponses(notebooks []*entity.Notebook) []*dto.NotebookResponse {
	res := make([]*dto.NotebookResponse, 0, len(notebooks))
	for _, n := range notebooks {
		res = append(res, ToNotebookResponse(n))
	}
	return res
}

func ToAnnotationResponse(a *entity.Annotation) *dto.AnnotationResponse {
	return &dto.AnnotationResponse{
		Id:         a.Id,
		Title:      a.Title,
		Body:       a.Body,
		UserId:     a.UserId,
		NotebookId: a.NotebookId,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func ToAnnotationResponses(annotations []*entity.Annotation) []*dto.AnnotationResponse {
	res := make([]*dto.AnnotationResponse, 0, len(annotations))
	for _, a := range annotations {
		res = append(res, ToAnnotationResponse(a))
	}
	return res
}
