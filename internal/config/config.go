// Package config provides configuration loading and management.
package config

// Default values used when neither flags, env nor the config file set a value.
const (
	DefaultTemplate    = "vanilla"
	DefaultProjectName = "vite-demo"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the create-vite configuration.
// Loaded from ~/.create-vite/config.yaml with CREATE_VITE_* env overrides.
type Config struct {
	// Template is the embedded template used when --template is not set.
	// Env: CREATE_VITE_TEMPLATE
	Template string `mapstructure:"template" yaml:"template,omitempty"`

	// TemplateDir points at an on-disk template that replaces the embedded ones.
	// Env: CREATE_VITE_TEMPLATE_DIR
	TemplateDir string `mapstructure:"templateDir" yaml:"templateDir,omitempty"`

	// PackageManager forces npm, yarn, pnpm or bun instead of detecting it.
	// Env: CREATE_VITE_PACKAGE_MANAGER
	PackageManager string `mapstructure:"packageManager" yaml:"packageManager,omitempty"`

	// ProjectName is the suggestion shown by the project name prompt.
	// Env: CREATE_VITE_PROJECT_NAME
	ProjectName string `mapstructure:"projectName" yaml:"projectName,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `create-vite config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Template:    DefaultTemplate,
		ProjectName: DefaultProjectName,
	}
}
