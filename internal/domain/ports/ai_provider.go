package ports

import "context"

// PatchSuggester define la interfaz para proveedores de IA que sugieren parches.
type PatchSuggester interface {
	// SuggestPatch envía un prefijo del log al modelo y devuelve el parche sugerido.
	// Una respuesta vacía sin error significa que el modelo no sugirió nada.
	SuggestPatch(ctx context.Context, logs string) (string, error)

	// GetProviderName retorna el nombre del proveedor (ej: "openai", "gemini")
	GetProviderName() string
}
