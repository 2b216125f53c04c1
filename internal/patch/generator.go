package patch

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// RequirementsFile es la lista de dependencias que el parche crea o extiende.
	RequirementsFile = "requirements.txt"
	// SystemDepsFile es el aviso para mantenedores con los headers de sistema faltantes.
	SystemDepsFile = ".fixbot_system_deps.txt"
	// NoticeFile es el aviso que se emite cuando ninguna firma matcheó.
	NoticeFile = ".fixbot_notice.txt"

	logsAdvisoryFile = ".fixbot_logs.txt"
	systemDepsIntro  = "The following headers were reported missing during CI/compile:"
)

// Generator arma el documento de parche a partir del texto de un log de CI.
type Generator struct {
	repoRoot string
}

func NewGenerator(repoRoot string) *Generator {
	if repoRoot == "" {
		repoRoot = "."
	}
	return &Generator{repoRoot: repoRoot}
}

// Generate escanea el log y devuelve el documento de parche completo. Los
// fragmentos se concatenan en orden fijo: requirements, headers de sistema y,
// si ninguno produjo salida, el aviso de que no hay arreglo automático.
// Siempre devuelve al menos un fragmento.
func (g *Generator) Generate(logs string) string {
	var doc strings.Builder

	doc.WriteString(g.requirementsFragment(ExtractMissingModules(logs)))
	doc.WriteString(g.systemDepsFragment(ExtractMissingHeaders(logs)))

	if doc.Len() == 0 {
		doc.WriteString(noticeFragment())
	}

	return doc.String()
}

// requirementsFragment decide la forma del diff según la existencia del
// archivo: si requirements.txt ya existe bajo la raíz se emite un update-diff
// agregando solo los módulos que no estén listados (comparación exacta contra
// las líneas existentes sin espacios); si no existe, un new-file-diff con la
// lista completa. Si todos los módulos ya estaban, no se emite nada.
func (g *Generator) requirementsFragment(missing []string) string {
	if len(missing) == 0 {
		return ""
	}

	reqPath := filepath.Join(g.repoRoot, RequirementsFile)
	data, err := os.ReadFile(reqPath)
	if err != nil {
		if os.IsNotExist(err) {
			return NewFileDiff(RequirementsFile, missing)
		}
		// archivo presente pero ilegible: no se arriesga un new-file-diff
		// sobre un archivo existente, se deja el paso sin salida
		return ""
	}

	oldLines := splitLines(string(data))
	existing := make(map[string]struct{}, len(oldLines))
	for _, line := range oldLines {
		existing[strings.TrimSpace(line)] = struct{}{}
	}

	added := make([]string, 0, len(missing))
	for _, module := range missing {
		if _, exists := existing[module]; !exists {
			added = append(added, module)
		}
	}
	if len(added) == 0 {
		return ""
	}

	newLines := make([]string, 0, len(oldLines)+len(added))
	newLines = append(newLines, oldLines...)
	newLines = append(newLines, added...)

	fragment, err := UpdateFileDiff(RequirementsFile, oldLines, newLines)
	if err != nil {
		return ""
	}
	return fragment
}

// systemDepsFragment siempre usa la forma new-file: el aviso se trata como
// archivo nuevo sin importar el estado del árbol.
func (g *Generator) systemDepsFragment(headers []string) string {
	if len(headers) == 0 {
		return ""
	}

	lines := make([]string, 0, len(headers)+1)
	lines = append(lines, systemDepsIntro)
	lines = append(lines, headers...)

	return NewFileDiff(SystemDepsFile, lines)
}

func noticeFragment() string {
	return NewFileDiff(NoticeFile, []string{
		"FixBot could not identify an automatic fix.",
		"See " + logsAdvisoryFile + " for details.",
	})
}
