package ports

import (
	"context"

	"github.com/Tomas-vilte/FixBot/internal/domain/models"
)

// VCSClient define las escrituras contra la API del sistema de control de versiones.
type VCSClient interface {
	// CreateComment publica un comentario en el PR indicado y devuelve el recurso creado.
	CreateComment(ctx context.Context, prNumber int, body string) (models.Comment, error)
}

// ActionsReader define las lecturas crudas contra la API de CI del proveedor.
// Devuelve el cuerpo de la respuesta sin procesar para poder conservarlo verbatim.
type ActionsReader interface {
	// GetWorkflowRun obtiene la metadata de una ejecución de workflow.
	GetWorkflowRun(ctx context.Context, runID string) ([]byte, error)
	// ListWorkflowJobs obtiene la lista de jobs de una ejecución.
	ListWorkflowJobs(ctx context.Context, runID string) ([]byte, error)
}
