// SPDX-License-Identifier: Unlicense OR MIT

package button

import (
	"image"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/customui/custombutton/glyph"
)

// DefaultPadding is the inset around the title and icon.
const DefaultPadding = unit.Dp(16)

// Inner draws the padded title and optional icon of a button, without
// decoration.
type Inner struct {
	Data    Data
	Theme   *material.Theme
	Inset   layout.Inset
	Spacing unit.Dp
}

// NewInner returns the undecorated content of data with default
// padding and spacing.
func NewInner(th *material.Theme, data Data) Inner {
	return Inner{
		Data:    data,
		Theme:   th,
		Inset:   layout.UniformInset(DefaultPadding),
		Spacing: DefaultSpacing,
	}
}

// Layout draws the padded title, preceded or followed by the icon.
func (in Inner) Layout(gtx layout.Context) layout.Dimensions {
	return in.Inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		if in.Data.Icon == nil {
			return in.title(gtx)
		}
		ls := CustomSpacing(in.Spacing, *in.Data.Icon)
		return ls.Layout(gtx, in.glyph, in.title)
	})
}

func (in Inner) title(gtx layout.Context) layout.Dimensions {
	l := material.Label(in.Theme, in.Theme.TextSize, in.Data.Title)
	l.Color = in.Data.Color
	l.MaxLines = 1
	return l.Layout(gtx)
}

// glyph draws the icon at the text size. Unknown names leave a blank
// space of the same size.
func (in Inner) glyph(gtx layout.Context) layout.Dimensions {
	sz := gtx.Sp(in.Theme.TextSize)
	gtx.Constraints = layout.Exact(gtx.Constraints.Constrain(image.Pt(sz, sz)))
	ic, ok := glyph.Lookup(in.Data.Icon.Name)
	if !ok {
		return layout.Dimensions{Size: gtx.Constraints.Min}
	}
	return ic.Layout(gtx, in.Data.Color)
}
