package services

import (
	"context"
	"fmt"
	"os"

	"github.com/Tomas-vilte/FixBot/internal/domain/ports"
	"github.com/Tomas-vilte/FixBot/internal/patch"
)

// PatchService genera el archivo de parche: primero intenta la cadena
// generativa y, si ningún proveedor devuelve algo, cae a las heurísticas.
type PatchService struct {
	suggesters []ports.PatchSuggester
	generator  *patch.Generator
}

func NewPatchService(suggesters []ports.PatchSuggester, generator *patch.Generator) *PatchService {
	return &PatchService{
		suggesters: suggesters,
		generator:  generator,
	}
}

// GeneratePatch escribe el parche en outPath, sobreescribiendo lo que hubiera,
// y devuelve el nombre del proveedor que lo produjo ("" si fue heurístico).
// Toda falla de la cadena generativa se absorbe en silencio y se sigue con el
// próximo proveedor; las heurísticas siempre producen un parche. Nunca se
// vuelve a la cadena generativa después de caer a las heurísticas.
func (s *PatchService) GeneratePatch(ctx context.Context, logs, outPath string) (string, error) {
	for _, suggester := range s.suggesters {
		patchText, err := suggester.SuggestPatch(ctx, logs)
		if err != nil || patchText == "" {
			continue
		}

		if err := writePatch(outPath, patchText); err != nil {
			return "", err
		}
		return suggester.GetProviderName(), nil
	}

	if err := writePatch(outPath, s.generator.Generate(logs)); err != nil {
		return "", err
	}
	return "", nil
}

func writePatch(outPath, content string) error {
	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("error al escribir el parche en %s: %w", outPath, err)
	}
	return nil
}
