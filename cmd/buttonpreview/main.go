// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program that previews pill buttons. Run with --help for options.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gioui.org/app"

	"github.com/customui/custombutton/internal/preview"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	go func() {
		err := preview.Execute(ctx)
		cancel()
		if err != nil {
			if errors.Is(err, context.Canceled) {
				os.Exit(130)
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}
