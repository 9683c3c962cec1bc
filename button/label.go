// SPDX-License-Identifier: Unlicense OR MIT

package button

import (
	"gioui.org/layout"
	"gioui.org/unit"
)

// DefaultSpacing is the gap between icon and title.
const DefaultSpacing = unit.Dp(5)

// LabelStyle arranges an icon and a title side by side.
type LabelStyle struct {
	Spacing unit.Dp
	Side    Side
}

// Custom returns the label style for icon with the default spacing.
func Custom(icon Icon) LabelStyle {
	return CustomSpacing(DefaultSpacing, icon)
}

// CustomSpacing returns the label style for icon separated from the
// title by spacing.
func CustomSpacing(spacing unit.Dp, icon Icon) LabelStyle {
	return LabelStyle{Spacing: spacing, Side: icon.Side}
}

// Arrange returns icon and title in layout order.
func (l LabelStyle) Arrange(icon, title layout.Widget) (first, second layout.Widget) {
	switch l.Side {
	case SideRight:
		return title, icon
	default:
		return icon, title
	}
}

// Layout lays out icon and title horizontally, centered on the cross
// axis and separated by exactly Spacing.
func (l LabelStyle) Layout(gtx layout.Context, icon, title layout.Widget) layout.Dimensions {
	first, second := l.Arrange(icon, title)
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(first),
		layout.Rigid(layout.Spacer{Width: l.Spacing}.Layout),
		layout.Rigid(second),
	)
}
