package gemini

import (
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// extractText junta las partes de texto de todos los candidatos de la respuesta.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}

	return strings.TrimSpace(sb.String())
}
