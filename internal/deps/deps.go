// Package deps reports availability of the external tools proofsheet shells
// out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"proofsheet/internal/config"
)

// Requirement defines an external dependency proofsheet relies on. When
// Alternates is set, resolving any one of the listed commands satisfies the
// requirement.
type Requirement struct {
	Name        string
	Command     string
	Alternates  []string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Default returns the requirements for a given configuration.
func Default(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "Manim",
			Command:     cfg.Render.ManimBinary,
			Description: "renders animation frames",
		},
		{
			Name:        "ImageMagick",
			Command:     "magick",
			Alternates:  []string{"montage"},
			Description: "contact-sheet montage fallback",
			Optional:    true,
		},
		{
			Name:        "Git",
			Command:     cfg.Docs.GitBinary,
			Description: "fetches the documentation source repo",
			Optional:    true,
		},
		{
			Name:        "Sphinx",
			Command:     cfg.Docs.SphinxBuild,
			Description: "builds markdown documentation",
			Optional:    true,
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		status := Status{
			Name:        req.Name,
			Command:     strings.TrimSpace(req.Command),
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}

		candidates := make([]string, 0, 1+len(req.Alternates))
		if status.Command != "" {
			candidates = append(candidates, status.Command)
		}
		for _, alt := range req.Alternates {
			if alt = strings.TrimSpace(alt); alt != "" {
				candidates = append(candidates, alt)
			}
		}
		if len(candidates) == 0 {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}

		for _, candidate := range candidates {
			if _, err := exec.LookPath(candidate); err == nil {
				status.Available = true
				status.Command = candidate
				break
			}
		}
		if !status.Available {
			if len(candidates) == 1 {
				status.Detail = fmt.Sprintf("binary %q not found", candidates[0])
			} else {
				status.Detail = fmt.Sprintf("none of %s found", strings.Join(candidates, ", "))
			}
		}
		results = append(results, status)
	}
	return results
}
