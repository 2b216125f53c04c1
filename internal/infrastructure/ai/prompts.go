package ai

import "fmt"

// MaxLogPrompt es la cantidad máxima de caracteres del log que se envían al modelo.
const MaxLogPrompt = 8192

const patchPromptTemplate = "You are a tool that outputs a minimal unified-diff patch to fix CI failures. " +
	"Output ONLY the patch.\n\nLogs:\n%s"

// BuildPatchPrompt arma el prompt fijo con un prefijo acotado del log.
func BuildPatchPrompt(logs string) string {
	if len(logs) > MaxLogPrompt {
		logs = logs[:MaxLogPrompt]
	}
	return fmt.Sprintf(patchPromptTemplate, logs)
}
