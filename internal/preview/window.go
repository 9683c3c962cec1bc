// SPDX-License-Identifier: Unlicense OR MIT

package preview

import (
	"context"
	"image"
	"image/png"
	"os"

	"gioui.org/app"
	"gioui.org/gpu/headless"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/pkg/errors"
)

// window shows v until the window is closed or ctx is done.
func window(ctx context.Context, v *view, opts options) error {
	w := new(app.Window)
	w.Option(
		app.Title("Button preview"),
		app.Size(unit.Dp(opts.width), unit.Dp(opts.height)),
	)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			w.Perform(system.ActionClose)
		case <-done:
		}
	}()

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			if e.Err == nil {
				return ctx.Err()
			}
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			v.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

// screenshot renders v off screen and writes it to opts.screenshot.
func screenshot(v *view, opts options) error {
	sz := image.Point{
		X: int(float32(opts.width) * opts.scale),
		Y: int(float32(opts.height) * opts.scale),
	}
	w, err := headless.NewWindow(sz.X, sz.Y)
	if err != nil {
		return errors.Wrap(err, "create headless window")
	}
	defer w.Release()

	gtx := layout.Context{
		Ops: new(op.Ops),
		Metric: unit.Metric{
			PxPerDp: opts.scale,
			PxPerSp: opts.scale,
		},
		Constraints: layout.Exact(sz),
	}
	v.Layout(gtx)
	if err := w.Frame(gtx.Ops); err != nil {
		return errors.Wrap(err, "render frame")
	}
	img := image.NewRGBA(image.Rectangle{Max: sz})
	if err := w.Screenshot(img); err != nil {
		return errors.Wrap(err, "capture frame")
	}

	f, err := os.Create(opts.screenshot)
	if err != nil {
		return errors.Wrap(err, "create screenshot")
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrap(err, "encode screenshot")
	}
	return f.Close()
}
