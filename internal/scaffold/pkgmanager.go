package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	oerrors "github.com/opmodel/create-vite/internal/errors"
)

// userAgentEnv is set by npm, yarn, pnpm and bun for the processes they start,
// e.g. "pnpm/8.6.0 npm/? node/v18.16.0 darwin x64".
const userAgentEnv = "npm_config_user_agent"

// defaultPackageManager is used when nothing points at another manager.
const defaultPackageManager = "npm"

// lockfiles maps lockfiles to the manager that writes them, in lookup order.
var lockfiles = []struct {
	file    string
	manager string
}{
	{"pnpm-lock.yaml", "pnpm"},
	{"yarn.lock", "yarn"},
	{"bun.lockb", "bun"},
	{"bun.lock", "bun"},
	{"package-lock.json", "npm"},
}

// PackageManager is the tool that installs dependencies and runs scripts.
type PackageManager struct {
	// Name is the executable: npm, yarn, pnpm or bun.
	Name string

	// Version is known when the manager launched create-vite itself.
	Version *semver.Version
}

// String returns name@version, or just the name when the version is unknown.
func (pm PackageManager) String() string {
	if pm.Version == nil {
		return pm.Name
	}
	return pm.Name + "@" + pm.Version.String()
}

// InstallCommand returns the argv that installs dependencies.
func (pm PackageManager) InstallCommand() []string {
	return []string{pm.Name, "install"}
}

// DevCommand returns the argv that starts the dev server.
func (pm PackageManager) DevCommand() []string {
	switch pm.Name {
	case "npm", "bun":
		return []string{pm.Name, "run", "dev"}
	default:
		return []string{pm.Name, "dev"}
	}
}

// SupportedPackageManagers returns the managers create-vite knows commands for.
func SupportedPackageManagers() []string {
	return []string{"npm", "yarn", "pnpm", "bun"}
}

func isSupported(name string) bool {
	for _, pm := range SupportedPackageManagers() {
		if pm == name {
			return true
		}
	}
	return false
}

// DetectPackageManager picks the package manager. An explicit override wins,
// then the manager that launched the process (from env), then a lockfile
// in dir, then npm.
func DetectPackageManager(override string, env map[string]string, dir string) (PackageManager, error) {
	if override != "" {
		if !isSupported(override) {
			return PackageManager{}, oerrors.NewValidationError(
				fmt.Sprintf("unsupported package manager: %s", override),
				"--package-manager",
				"Supported package managers: "+strings.Join(SupportedPackageManagers(), ", "),
			)
		}
		return PackageManager{Name: override}, nil
	}

	if pm, ok := parseUserAgent(env[userAgentEnv]); ok {
		return pm, nil
	}

	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(dir, lf.file)); err == nil {
			return PackageManager{Name: lf.manager}, nil
		}
	}

	return PackageManager{Name: defaultPackageManager}, nil
}

// parseUserAgent reads the first "name/version" token of a user agent.
func parseUserAgent(ua string) (PackageManager, bool) {
	fields := strings.Fields(ua)
	if len(fields) == 0 {
		return PackageManager{}, false
	}

	name, version, _ := strings.Cut(fields[0], "/")
	if !isSupported(name) {
		return PackageManager{}, false
	}

	pm := PackageManager{Name: name}
	if v, err := semver.NewVersion(version); err == nil {
		pm.Version = v
	}
	return pm, true
}
