package models

import "encoding/json"

type (
	// RunInfo es la proyección reducida de una ejecución de workflow.
	// Los campos son punteros para que las claves queden en null cuando el
	// proveedor no devuelve el dato.
	RunInfo struct {
		ID         *int64  `json:"id"`
		HeadSHA    *string `json:"head_sha"`
		Status     *string `json:"status"`
		Conclusion *string `json:"conclusion"`
		Event      *string `json:"event"`
	}

	// JobSummary es la proyección reducida de un job dentro de una ejecución.
	// El orden sigue al de la respuesta del proveedor.
	JobSummary struct {
		ID         *int64  `json:"id"`
		Name       *string `json:"name"`
		Status     *string `json:"status"`
		Conclusion *string `json:"conclusion"`
		HTMLURL    *string `json:"html_url"`
	}

	// RunCapture es el resumen completo que se serializa al archivo de salida.
	// RawRun y RawJobs conservan las respuestas del proveedor tal cual llegaron,
	// para debugging posterior.
	RunCapture struct {
		Run         RunInfo         `json:"run"`
		JobsSummary []JobSummary    `json:"jobs_summary"`
		RawRun      json.RawMessage `json:"raw_run"`
		RawJobs     json.RawMessage `json:"raw_jobs"`
	}
)
