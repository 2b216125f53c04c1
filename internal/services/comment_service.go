package services

import (
	"context"

	"github.com/Tomas-vilte/FixBot/internal/domain/ports"
)

// CommentService publica comentarios en PRs a través del cliente VCS.
type CommentService struct {
	vcsClient ports.VCSClient
}

func NewCommentService(vcsClient ports.VCSClient) *CommentService {
	return &CommentService{
		vcsClient: vcsClient,
	}
}

// PostComment publica el mensaje como comentario del PR y devuelve la URL
// pública del recurso creado. No hay reintentos: la política de reinvocación
// es responsabilidad del workflow que invoca.
func (s *CommentService) PostComment(ctx context.Context, prNumber int, message string) (string, error) {
	comment, err := s.vcsClient.CreateComment(ctx, prNumber, message)
	if err != nil {
		return "", err
	}
	return comment.HTMLURL, nil
}
