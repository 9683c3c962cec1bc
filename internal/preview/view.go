// SPDX-License-Identifier: Unlicense OR MIT

package preview

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/charmbracelet/log"

	"github.com/customui/custombutton/button"
)

// rowSpacing separates the buttons of the preview.
const rowSpacing = unit.Dp(20)

var background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// view lays out a catalog of buttons as a centered column.
type view struct {
	theme   *material.Theme
	buttons []button.Data
	clicks  []widget.Clickable
	logger  *log.Logger
}

func newView(th *material.Theme, buttons []button.Data, logger *log.Logger) *view {
	return &view{
		theme:   th,
		buttons: buttons,
		clicks:  make([]widget.Clickable, len(buttons)),
		logger:  logger,
	}
}

func (v *view) Layout(gtx layout.Context) layout.Dimensions {
	for i := range v.clicks {
		if v.clicks[i].Clicked(gtx) {
			v.logger.Info("clicked", "index", i, "title", v.buttons[i].Title)
		}
	}

	paint.Fill(gtx.Ops, background)

	children := make([]layout.FlexChild, 0, 2*len(v.buttons))
	for i := range v.buttons {
		if i > 0 {
			children = append(children, layout.Rigid(layout.Spacer{Height: rowSpacing}.Layout))
		}
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min = image.Point{}
			return button.New(v.theme, v.buttons[i]).Clickable(&v.clicks[i]).Layout(gtx)
		}))
	}
	return layout.UniformInset(rowSpacing).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx, children...)
	})
}
