package config

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceConfig indicates value came from the config file or its env override.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value with its source.
type ResolvedValue struct {
	Value  string
	Source ConfigSource
}

// ResolveOptions holds the raw flag values for resolution.
type ResolveOptions struct {
	TemplateFlag       string
	TemplateDirFlag    string
	PackageManagerFlag string

	// Config is the loaded config (may be nil).
	Config *Config
}

// ResolvedConfig holds every value the scaffold command needs.
type ResolvedConfig struct {
	Template       ResolvedValue
	TemplateDir    ResolvedValue
	PackageManager ResolvedValue
	ProjectName    ResolvedValue
}

// Resolve applies precedence flag > config (file or env) > default.
func Resolve(opts ResolveOptions) *ResolvedConfig {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	return &ResolvedConfig{
		Template:       resolve(opts.TemplateFlag, cfg.Template, DefaultTemplate),
		TemplateDir:    resolve(opts.TemplateDirFlag, cfg.TemplateDir, ""),
		PackageManager: resolve(opts.PackageManagerFlag, cfg.PackageManager, ""),
		ProjectName:    resolve("", cfg.ProjectName, DefaultProjectName),
	}
}

func resolve(flag, configured, def string) ResolvedValue {
	switch {
	case flag != "":
		return ResolvedValue{Value: flag, Source: SourceFlag}
	case configured != "":
		return ResolvedValue{Value: configured, Source: SourceConfig}
	default:
		return ResolvedValue{Value: def, Source: SourceDefault}
	}
}
