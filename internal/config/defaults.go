package config

const (
	defaultMediaDir       = "media"
	defaultLogDir         = "~/.local/share/proofsheet/logs"
	defaultManimBinary    = "manim"
	defaultRenderQuality  = "l"
	defaultRenderFPS      = 2
	defaultRenderTimeout  = 900
	defaultSheetGrid      = "4x4"
	defaultSheetMaxWidth  = 320
	defaultSheetGridColor = "808080"
	defaultSheetLabelSize = 12
	defaultSheetBackend   = "auto"
	defaultDocsRepoURL    = "https://github.com/ManimCommunity/manim.git"
	defaultDocsRepoDir    = "~/.cache/proofsheet/manim-docs"
	defaultDocsOutDir     = "references/manim-docs"
	defaultSphinxBuild    = "sphinx-build"
	defaultGitBinary      = "git"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			MediaDir: defaultMediaDir,
			LogDir:   defaultLogDir,
		},
		Render: Render{
			ManimBinary:    defaultManimBinary,
			Quality:        defaultRenderQuality,
			FPS:            defaultRenderFPS,
			TimeoutSeconds: defaultRenderTimeout,
		},
		Sheet: Sheet{
			Grid:      defaultSheetGrid,
			MaxWidth:  defaultSheetMaxWidth,
			GridColor: defaultSheetGridColor,
			LabelSize: defaultSheetLabelSize,
			Backend:   defaultSheetBackend,
		},
		Docs: Docs{
			RepoURL:     defaultDocsRepoURL,
			RepoDir:     defaultDocsRepoDir,
			OutDir:      defaultDocsOutDir,
			SphinxBuild: defaultSphinxBuild,
			GitBinary:   defaultGitBinary,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
