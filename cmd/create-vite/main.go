// Package main is the entry point for create-vite.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/opmodel/create-vite/internal/cmd"
	oerrors "github.com/opmodel/create-vite/internal/errors"
	"github.com/opmodel/create-vite/internal/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		var exitErr *oerrors.ExitError
		// Only print if the command layer hasn't already printed it
		if !errors.As(err, &exitErr) || !exitErr.Printed {
			fmt.Fprintln(os.Stderr, err)
		}

		code := oerrors.ExitCodeFromError(err)
		output.Debug("exiting", "code", code, "reason", oerrors.ExitCodeName(code))
		os.Exit(code)
	}
}
