package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// moduleRefPattern matches Sphinx autosummary module references such as
// "~manim.scene.scene_file_writer" at the start of an index line.
var moduleRefPattern = regexp.MustCompile(`(?m)^\s*~([a-zA-Z0-9_.]+)`)

// extractModules pulls the dotted module paths referenced by a reference
// index document, in order of appearance.
func extractModules(rstContent string) []string {
	matches := moduleRefPattern.FindAllStringSubmatch(rstContent, -1)
	modules := make([]string, 0, len(matches))
	for _, match := range matches {
		modules = append(modules, match[1])
	}
	return modules
}

// groupKey collapses a module path to its first two dotted levels, the
// granularity the grouped section files are written at. Modules with fewer
// than two levels have no group.
func groupKey(module string) (string, bool) {
	parts := strings.Split(module, ".")
	if len(parts) < 2 {
		return "", false
	}
	return strings.Join(parts[:2], "."), true
}

// writeSectionGroups concatenates the generated per-module markdown pages
// named by the index content into one file per group under sectionsDir.
// Modules whose generated page does not exist are skipped.
func writeSectionGroups(rstContent, refDir, sectionsDir string) error {
	type moduleRef struct {
		module string
		path   string
	}

	grouped := make(map[string][]moduleRef)
	for _, module := range extractModules(rstContent) {
		refPath := filepath.Join(refDir, "manim."+module+".md")
		if _, err := os.Stat(refPath); err != nil {
			continue
		}
		key, ok := groupKey(module)
		if !ok {
			continue
		}
		grouped[key] = append(grouped[key], moduleRef{module: module, path: refPath})
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		var builder strings.Builder
		for _, ref := range grouped[key] {
			content, err := os.ReadFile(ref.path)
			if err != nil {
				return fmt.Errorf("read reference page for %s: %w", ref.module, err)
			}
			builder.WriteString("## " + ref.module + "\n")
			builder.Write(content)
			builder.WriteString("\n")
		}
		target := filepath.Join(sectionsDir, key+".md")
		if err := os.WriteFile(target, []byte(builder.String()), 0o644); err != nil {
			return fmt.Errorf("write section group %s: %w", key, err)
		}
	}
	return nil
}
