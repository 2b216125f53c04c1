package patch

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// NewFileDiff arma un fragmento unified-diff que crea un archivo nuevo,
// usando /dev/null como lado "antes". El hunk cubre exactamente len(lines).
func NewFileDiff(relPath string, lines []string) string {
	var sb strings.Builder
	sb.WriteString("--- /dev/null\n")
	fmt.Fprintf(&sb, "+++ b/%s\n", relPath)
	fmt.Fprintf(&sb, "@@ -0,0 +1,%d @@\n", len(lines))
	for _, line := range lines {
		sb.WriteString("+")
		sb.WriteString(strings.TrimRight(line, "\n"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// UpdateFileDiff arma un fragmento unified-diff entre dos versiones de un
// archivo ya existente, con los prefijos a/ y b/ que espera git apply.
func UpdateFileDiff(relPath string, oldLines, newLines []string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        withLineTerminators(oldLines),
		B:        withLineTerminators(newLines),
		FromFile: "a/" + relPath,
		ToFile:   "b/" + relPath,
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("error al generar el diff de %s: %w", relPath, err)
	}
	return text, nil
}

// withLineTerminators normaliza las líneas para difflib, que espera cada línea
// con su terminador incluido.
func withLineTerminators(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimRight(line, "\n") + "\n"
	}
	return out
}

// splitLines corta el contenido de un archivo en líneas sin terminador.
// Un único salto de línea final no produce línea vacía extra.
func splitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}
