package scaffold

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/opmodel/create-vite/internal/errors"
	"github.com/opmodel/create-vite/internal/output"
	"github.com/opmodel/create-vite/internal/prompt"
)

// DirState is what ResolveTarget found at the target path.
type DirState int

const (
	// DirAbsent means nothing existed; the directory was created.
	DirAbsent DirState = iota

	// DirEmpty means an empty directory already existed.
	DirEmpty

	// DirNonEmpty means the directory had entries, which were removed
	// after the user confirmed.
	DirNonEmpty
)

// String returns the state name.
func (s DirState) String() string {
	switch s {
	case DirAbsent:
		return "absent"
	case DirEmpty:
		return "empty"
	case DirNonEmpty:
		return "non-empty"
	default:
		return "unknown"
	}
}

// Target is a project directory that is ready to receive files.
type Target struct {
	// Name is the directory name as entered by the user.
	Name string

	// Root is the absolute path of the directory.
	Root string

	// State is what was found before the directory was prepared.
	State DirState
}

// ResolveTarget asks for a project name if none was given, then creates or
// empties <cwd>/<name>. Nothing on disk changes unless the directory is
// missing, already empty, or the user agreed to remove its contents.
func ResolveTarget(req Request, p prompt.Prompter) (*Target, error) {
	name := strings.TrimSpace(req.ProjectName)
	if name == "" {
		suggestion := req.DefaultProjectName
		if suggestion == "" {
			suggestion = DefaultProjectName
		}

		answer, err := p.Text(prompt.TextQuestion{
			Message: "Project name:",
			Default: suggestion,
		})
		if err != nil {
			return nil, promptErr(err)
		}
		if answer == "" {
			return nil, ErrAborted
		}
		name = answer
	}

	root := filepath.Join(req.Cwd, name)

	state, err := inspectDir(root)
	if err != nil {
		return nil, err
	}

	switch state {
	case DirAbsent:
		if err := os.MkdirAll(root, 0o755); err != nil {
			return nil, oerrors.NewFilesystemError("creating project directory", root, err)
		}
	case DirNonEmpty:
		yes, err := p.Confirm(prompt.ConfirmQuestion{
			Message:     "Remove existing files and continue?",
			Default:     true,
			Destructive: true,
		})
		if err != nil {
			return nil, promptErr(err)
		}
		if !yes {
			return nil, ErrAborted
		}
		output.Warn("removing existing files", "dir", root)
		if err := EmptyDir(root); err != nil {
			return nil, err
		}
	}

	return &Target{Name: name, Root: root, State: state}, nil
}

// inspectDir reports whether dir is missing, empty or has entries.
func inspectDir(dir string) (DirState, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return DirAbsent, nil
	}
	if err != nil {
		return 0, oerrors.NewFilesystemError("reading project directory", dir, err)
	}
	if len(entries) == 0 {
		return DirEmpty, nil
	}
	return DirNonEmpty, nil
}

// EmptyDir removes every entry of dir, files and subdirectories alike,
// and keeps dir itself.
func EmptyDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return oerrors.NewFilesystemError("reading project directory", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return oerrors.NewFilesystemError("removing existing entry", path, err)
		}
	}
	return nil
}
