package scaffold

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	oerrors "github.com/opmodel/create-vite/internal/errors"
)

// Runner runs an external command in dir and waits for it to exit.
type Runner interface {
	Run(ctx context.Context, dir string, argv []string) error
}

// ExecRunner runs commands as child processes attached to the given streams,
// normally the console.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, dir string, argv []string) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return oerrors.NewSubprocessError(strings.Join(argv, " "), dir, err)
	}
	return nil
}
