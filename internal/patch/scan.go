package patch

import (
	"regexp"
	"sort"
	"strings"
)

var (
	moduleNotFoundRe = regexp.MustCompile(`ModuleNotFoundError: No module named '([A-Za-z0-9_]+)'`)
	importErrorRe    = regexp.MustCompile(`ImportError: No module named ([A-Za-z0-9_]+)`)
	noDistributionRe = regexp.MustCompile(`No matching distribution found for ([A-Za-z0-9_\-.]+)`)
	missingHeaderRe  = regexp.MustCompile(`fatal error: ([A-Za-z0-9_\-/]+\.h): No such file or directory`)
)

// extractGroup devuelve el primer grupo de captura de cada match, en orden de aparición.
func extractGroup(logs string, re *regexp.Regexp) []string {
	matches := re.FindAllStringSubmatch(logs, -1)
	found := make([]string, 0, len(matches))
	for _, match := range matches {
		found = append(found, match[1])
	}
	return found
}

// ExtractModuleNotFound detecta firmas "ModuleNotFoundError: No module named '<x>'".
func ExtractModuleNotFound(logs string) []string {
	return extractGroup(logs, moduleNotFoundRe)
}

// ExtractImportErrors detecta firmas "ImportError: No module named <x>".
func ExtractImportErrors(logs string) []string {
	return extractGroup(logs, importErrorRe)
}

// ExtractMissingDistributions detecta firmas de pip "No matching distribution found for <x>".
func ExtractMissingDistributions(logs string) []string {
	return extractGroup(logs, noDistributionRe)
}

// ExtractMissingModules une las tres familias de firmas de módulos faltantes en
// un único conjunto en minúsculas. Se devuelve ordenado para que el parche
// resultante sea determinístico.
func ExtractMissingModules(logs string) []string {
	missing := make(map[string]struct{})
	for _, extractor := range []func(string) []string{
		ExtractModuleNotFound,
		ExtractImportErrors,
		ExtractMissingDistributions,
	} {
		for _, module := range extractor(logs) {
			missing[strings.ToLower(module)] = struct{}{}
		}
	}

	modules := make([]string, 0, len(missing))
	for module := range missing {
		modules = append(modules, module)
	}
	sort.Strings(modules)

	return modules
}

// ExtractMissingHeaders detecta headers de C faltantes. Conserva el orden de
// primera aparición y suprime duplicados.
func ExtractMissingHeaders(logs string) []string {
	seen := make(map[string]struct{})
	var headers []string
	for _, header := range extractGroup(logs, missingHeaderRe) {
		if _, exists := seen[header]; exists {
			continue
		}
		seen[header] = struct{}{}
		headers = append(headers, header)
	}
	return headers
}
