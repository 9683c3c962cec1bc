// SPDX-License-Identifier: Unlicense OR MIT

package button

import (
	"image"
	"image/color"

	"gioui.org/io/pointer"
	"gioui.org/io/semantic"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// DefaultStrokeWidth is the border width of Outline buttons.
const DefaultStrokeWidth = unit.Dp(2)

// Style draws a button decorated according to its Kind.
type Style struct {
	Data        Data
	Theme       *material.Theme
	Inset       layout.Inset
	Spacing     unit.Dp
	StrokeWidth unit.Dp
	// Button is optional. When set the button reacts to clicks.
	Button *widget.Clickable
}

// New returns the style for data with default padding, spacing and
// stroke width.
func New(th *material.Theme, data Data) Style {
	return Style{
		Data:        data,
		Theme:       th,
		Inset:       layout.UniformInset(DefaultPadding),
		Spacing:     DefaultSpacing,
		StrokeWidth: DefaultStrokeWidth,
	}
}

// Clickable returns a copy of s that reports clicks to c.
func (s Style) Clickable(c *widget.Clickable) Style {
	s.Button = c
	return s
}

// Layout draws the button and its decoration. The decoration never
// changes the size of the content.
func (s Style) Layout(gtx layout.Context) layout.Dimensions {
	if s.Button == nil {
		return s.layout(gtx)
	}
	return s.Button.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		semantic.Button.Add(gtx.Ops)
		dims := s.layout(gtx)
		defer clip.Rect{Max: dims.Size}.Push(gtx.Ops).Pop()
		pointer.CursorPointer.Add(gtx.Ops)
		return dims
	})
}

func (s Style) layout(gtx layout.Context) layout.Dimensions {
	inner := Inner{
		Data:    s.Data,
		Theme:   s.Theme,
		Inset:   s.Inset,
		Spacing: s.Spacing,
	}
	macro := op.Record(gtx.Ops)
	dims := inner.Layout(gtx)
	content := macro.Stop()

	decorationOf(s.Data.Kind, s.StrokeWidth).paint(gtx, dims.Size)
	content.Add(gtx.Ops)
	return dims
}

// decoration is the background treatment of a Kind.
type decoration struct {
	fill   bool
	stroke bool
	color  color.NRGBA
	width  unit.Dp
}

func decorationOf(k Kind, width unit.Dp) decoration {
	switch k := k.(type) {
	case Default:
		return decoration{fill: true, color: k.Color}
	case Outline:
		return decoration{stroke: true, color: k.Color, width: width}
	case Plain, nil:
		return decoration{}
	default:
		panic("unreachable")
	}
}

func (d decoration) paint(gtx layout.Context, sz image.Point) {
	switch {
	case d.fill:
		r := image.Rectangle{Max: sz}
		paint.FillShape(gtx.Ops, d.color, clip.UniformRRect(r, pillRadius(sz)).Op(gtx.Ops))
	case d.stroke:
		width := gtx.Dp(d.width)
		r, radius := strokeRect(sz, width)
		paint.FillShape(gtx.Ops,
			d.color,
			clip.Stroke{
				Path:  clip.UniformRRect(r, radius).Path(gtx.Ops),
				Width: float32(width),
			}.Op(),
		)
	}
}

// strokeRect returns the centerline rectangle and corner radius of a
// pill stroke of width pixels that stays within a box of size sz.
func strokeRect(sz image.Point, width int) (image.Rectangle, int) {
	r := image.Rectangle{Max: sz.Sub(image.Point{X: width, Y: width})}
	r = r.Add(image.Point{X: width / 2, Y: width / 2})
	return r, pillRadius(r.Size())
}

// pillRadius is the corner radius that fully rounds the short edges of
// a rectangle of size sz.
func pillRadius(sz image.Point) int {
	return min(sz.X, sz.Y) / 2
}
