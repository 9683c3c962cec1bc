// SPDX-License-Identifier: Unlicense OR MIT

// Package preview implements the buttonpreview command, which shows a
// catalog of buttons in a window or renders it to a PNG file.
package preview

import (
	"context"
	"os"

	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/widget/material"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/customui/custombutton/button"
	"github.com/customui/custombutton/internal/catalog"
)

type options struct {
	catalog    string
	screenshot string
	width      int
	height     int
	scale      float32
	verbose    bool
}

// NewCommand returns the root buttonpreview command.
func NewCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "buttonpreview",
		Short:         "Preview pill buttons",
		Long:          "buttonpreview shows a catalog of buttons in a window, or renders it to a PNG file with --screenshot.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.catalog, "catalog", "", "TOML catalog of buttons (default: built-in catalog)")
	f.StringVar(&opts.screenshot, "screenshot", "", "render to this PNG file and exit")
	f.IntVar(&opts.width, "width", 400, "window width in dp")
	f.IntVar(&opts.height, "height", 760, "window height in dp")
	f.Float32Var(&opts.scale, "scale", 1, "pixels per dp for --screenshot")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	return cmd
}

func run(ctx context.Context, opts options) error {
	logger := loggerFromContext(ctx)

	if opts.width <= 0 || opts.height <= 0 {
		return errors.Errorf("invalid size %dx%d", opts.width, opts.height)
	}
	if opts.scale <= 0 {
		return errors.Errorf("invalid scale %v", opts.scale)
	}

	buttons, err := loadButtons(opts.catalog)
	if err != nil {
		return err
	}
	logger.Debug("loaded catalog", "buttons", len(buttons), "path", opts.catalog)

	th := newTheme()
	v := newView(th, buttons, logger)
	if opts.screenshot != "" {
		if err := screenshot(v, opts); err != nil {
			return err
		}
		logger.Info("wrote screenshot", "path", opts.screenshot)
		return nil
	}
	return window(ctx, v, opts)
}

func loadButtons(path string) ([]button.Data, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

func newTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	return th
}

// Execute runs the buttonpreview command with ctx.
func Execute(ctx context.Context) error {
	cmd := NewCommand()
	cmd.SetErr(os.Stderr)
	return cmd.ExecuteContext(ctx)
}
