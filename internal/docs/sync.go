package docs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"proofsheet/internal/config"
	"proofsheet/internal/fileutil"
	"proofsheet/internal/logging"
	"proofsheet/internal/services"
)

// curatedFiles are the hand-picked markdown pages copied verbatim from the
// Sphinx build into the output tree. Entries are build-relative slash paths.
var curatedFiles = []string{
	"tutorials/quickstart.md",
	"tutorials/building_blocks.md",
	"tutorials/output_and_config.md",
	"guides/using_text.md",
	"guides/configuration.md",
	"guides/deep_dive.md",
	"examples.md",
	"tutorials_guides.md",
	"faq/general.md",
	"faq/help.md",
	"faq/installation.md",
	"faq/opengl.md",
}

// sectionNames are the reference index sections regrouped into per-module
// markdown files.
var sectionNames = []string{
	"animations",
	"cameras",
	"configuration",
	"mobjects",
	"scenes",
	"utilities_misc",
}

// Syncer clones or updates the documentation source repository, builds
// markdown with Sphinx, and organizes the output into curated references.
type Syncer struct {
	cfg    *config.Config
	logger *slog.Logger
	exec   services.Executor
}

// Option configures the syncer.
type Option func(*Syncer)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec services.Executor) Option {
	return func(s *Syncer) {
		if exec != nil {
			s.exec = exec
		}
	}
}

// NewSyncer constructs a Syncer from configuration.
func NewSyncer(cfg *config.Config, logger *slog.Logger, opts ...Option) *Syncer {
	syncer := &Syncer{
		cfg:    cfg,
		logger: logger,
		exec:   services.CommandExecutor{},
	}
	for _, opt := range opts {
		opt(syncer)
	}
	return syncer
}

func (s *Syncer) buildDir() string {
	return filepath.Join(s.cfg.Docs.RepoDir, "docs", "_build", "markdown")
}

func (s *Syncer) sourceDir() string {
	return filepath.Join(s.cfg.Docs.RepoDir, "docs", "source")
}

// Sync runs the full pipeline: repo update, Sphinx build, curated copy, and
// reference regrouping. The output directory is rebuilt from scratch on
// every run.
func (s *Syncer) Sync(ctx context.Context) error {
	if err := s.ensureRepo(ctx); err != nil {
		return err
	}
	if err := s.buildMarkdown(ctx); err != nil {
		return err
	}

	outDir := s.cfg.Docs.OutDir
	if err := os.RemoveAll(outDir); err != nil {
		return fmt.Errorf("reset output directory: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	s.copyCurated(outDir)

	refDst := filepath.Join(outDir, "reference")
	refSrc := filepath.Join(s.buildDir(), "reference")
	if _, err := os.Stat(refSrc); err == nil {
		if err := fileutil.CopyTree(refSrc, refDst); err != nil {
			return fmt.Errorf("copy reference tree: %w", err)
		}
		if err := s.buildSections(refDst, filepath.Join(outDir, "reference_sections")); err != nil {
			return err
		}
		// The raw reference tree only feeds the grouped sections.
		if err := os.RemoveAll(refDst); err != nil {
			return fmt.Errorf("remove reference tree: %w", err)
		}
	}

	s.logger.Info("documentation references updated", logging.String("out_dir", outDir))
	return nil
}

func (s *Syncer) ensureRepo(ctx context.Context) error {
	repoDir := s.cfg.Docs.RepoDir
	git := s.cfg.Docs.GitBinary

	if _, err := os.Stat(filepath.Join(repoDir, ".git")); err == nil {
		s.logger.Info("updating documentation repo", logging.String("repo_dir", repoDir))
		if err := s.exec.Run(ctx, git, []string{"-C", repoDir, "fetch", "--all", "--prune"}, nil); err != nil {
			return services.Wrap(services.ErrExternalTool, "docs", "git fetch", repoDir, err)
		}
		if err := s.exec.Run(ctx, git, []string{"-C", repoDir, "pull", "--ff-only"}, nil); err != nil {
			return services.Wrap(services.ErrExternalTool, "docs", "git pull", repoDir, err)
		}
		return nil
	}

	s.logger.Info("cloning documentation repo",
		logging.String("url", s.cfg.Docs.RepoURL),
		logging.String("repo_dir", repoDir))
	if err := s.exec.Run(ctx, git, []string{"clone", s.cfg.Docs.RepoURL, repoDir}, nil); err != nil {
		return services.Wrap(services.ErrExternalTool, "docs", "git clone", s.cfg.Docs.RepoURL, err)
	}
	return nil
}

func (s *Syncer) buildMarkdown(ctx context.Context) error {
	buildDir := s.buildDir()
	logPath := filepath.Join(filepath.Dir(buildDir), "markdown-build.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("create build directory: %w", err)
	}

	s.logger.Info("building markdown docs", logging.String("build_dir", buildDir))

	var output strings.Builder
	args := []string{
		"-q",
		"-b", "markdown",
		"-t", "skip-manim",
		"-c", s.sourceDir(),
		s.sourceDir(),
		buildDir,
	}
	runErr := s.exec.Run(ctx, s.cfg.Docs.SphinxBuild, args, func(line string) {
		output.WriteString(line)
		output.WriteByte('\n')
	})

	if err := os.WriteFile(logPath, []byte(output.String()), 0o644); err != nil {
		s.logger.Warn("failed to write build log", logging.Error(err))
	}

	if runErr != nil {
		return services.Wrap(services.ErrExternalTool, "docs", "sphinx-build",
			fmt.Sprintf("build failed; last output:\n%s", tailLines(output.String(), 50)), runErr)
	}

	for _, line := range strings.Split(output.String(), "\n") {
		if strings.Contains(line, "WARNING") || strings.Contains(line, "ERROR") {
			s.logger.Warn("sphinx diagnostic", logging.String("line", strings.TrimSpace(line)))
		}
	}
	return nil
}

func (s *Syncer) copyCurated(outDir string) {
	buildDir := s.buildDir()
	for _, rel := range curatedFiles {
		src := filepath.Join(buildDir, filepath.FromSlash(rel))
		dst := filepath.Join(outDir, filepath.FromSlash(rel))
		if _, err := os.Stat(src); err != nil {
			s.logger.Warn("curated page missing from build", logging.String("page", rel))
			continue
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			s.logger.Warn("copy curated page", logging.String("page", rel), logging.Error(err))
			continue
		}
		if err := fileutil.CopyFile(src, dst); err != nil {
			s.logger.Warn("copy curated page", logging.String("page", rel), logging.Error(err))
		}
	}
}

func (s *Syncer) buildSections(refDir, sectionsDir string) error {
	if err := os.MkdirAll(sectionsDir, 0o755); err != nil {
		return fmt.Errorf("create sections directory: %w", err)
	}

	indexDir := filepath.Join(s.sourceDir(), "reference_index")
	for _, section := range sectionNames {
		rstPath := filepath.Join(indexDir, section+".rst")
		content, err := os.ReadFile(rstPath)
		if err != nil {
			s.logger.Warn("section index missing", logging.String("section", section))
			continue
		}
		if err := writeSectionGroups(string(content), refDir, sectionsDir); err != nil {
			return fmt.Errorf("section %s: %w", section, err)
		}
	}
	return nil
}

func tailLines(text string, n int) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
