package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	domainerrors "github.com/Tomas-vilte/FixBot/internal/domain/errors"
	"github.com/Tomas-vilte/FixBot/internal/domain/models"
	"github.com/Tomas-vilte/FixBot/internal/domain/ports"
	"github.com/Tomas-vilte/FixBot/internal/i18n"
)

// CaptureService arma el resumen de una ejecución de workflow a partir de las
// respuestas crudas del proveedor.
type CaptureService struct {
	actions ports.ActionsReader
	trans   *i18n.Translations
}

func NewCaptureService(actions ports.ActionsReader, trans *i18n.Translations) *CaptureService {
	return &CaptureService{
		actions: actions,
		trans:   trans,
	}
}

// CaptureRun consulta la metadata de la ejecución y su lista de jobs como dos
// peticiones independientes: la falla de una no aborta la otra, solo degrada
// su sección a un placeholder con el error y suma una advertencia. La captura
// es best-effort y nunca falla por errores remotos.
func (s *CaptureService) CaptureRun(ctx context.Context, runID string) (*models.RunCapture, []string) {
	var warnings []string

	capture := &models.RunCapture{
		JobsSummary: make([]models.JobSummary, 0),
	}

	rawRun, err := s.actions.GetWorkflowRun(ctx, runID)
	if err != nil {
		warnings = append(warnings, s.trans.GetMessage("fetch_run_warning", 0, map[string]interface{}{
			"Error": err,
		}))
		capture.RawRun = errorPlaceholder(err)
	} else {
		capture.RawRun = rawOrQuoted(rawRun)
		// proyección laxa: un cuerpo que no parsea deja los campos en null
		_ = json.Unmarshal(rawRun, &capture.Run)
	}

	rawJobs, err := s.actions.ListWorkflowJobs(ctx, runID)
	if err != nil {
		warnings = append(warnings, s.trans.GetMessage("fetch_jobs_warning", 0, map[string]interface{}{
			"Error": err,
		}))
		capture.RawJobs = errorPlaceholder(err)
	} else {
		capture.RawJobs = rawOrQuoted(rawJobs)

		var payload struct {
			Jobs []models.JobSummary `json:"jobs"`
		}
		// la ausencia de la clave "jobs" o un cuerpo malformado se trata
		// como cero jobs, no como error
		if err := json.Unmarshal(rawJobs, &payload); err == nil && payload.Jobs != nil {
			capture.JobsSummary = payload.Jobs
		}
	}

	return capture, warnings
}

// WriteSummary serializa el resumen con indentación de dos espacios,
// preservando caracteres no ASCII, y sobreescribe el archivo de salida.
func (s *CaptureService) WriteSummary(capture *models.RunCapture, outPath string) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(capture); err != nil {
		return fmt.Errorf("error al serializar el resumen: %w", err)
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error al escribir el resumen en %s: %w", outPath, err)
	}

	return nil
}

// errorPlaceholder arma la sección {"error": ...} que reemplaza a una
// respuesta fallida. Para errores remotos conserva el cuerpo de la respuesta.
func errorPlaceholder(err error) json.RawMessage {
	detail := err.Error()

	var remoteErr *domainerrors.RemoteRequestError
	if errors.As(err, &remoteErr) {
		detail = remoteErr.Body
	}

	payload, _ := json.Marshal(map[string]string{"error": detail})
	return payload
}

// rawOrQuoted conserva el cuerpo verbatim si es JSON válido; si no, lo
// envuelve como string JSON para que el resumen siga siendo serializable.
func rawOrQuoted(body []byte) json.RawMessage {
	if json.Valid(body) {
		return body
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}
