// SPDX-License-Identifier: Unlicense OR MIT

package button

import "image/color"

// Side is the side of the title an icon is placed on.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// Icon names a glyph and the side of the title it is drawn on.
type Icon struct {
	Side Side
	// Name is resolved through the glyph package.
	Name string
}

// Left returns an icon drawn before the title.
func Left(name string) *Icon {
	return &Icon{Side: SideLeft, Name: name}
}

// Right returns an icon drawn after the title.
func Right(name string) *Icon {
	return &Icon{Side: SideRight, Name: name}
}

// Kind selects the decoration drawn behind a button. The variants are
// Default, Outline and Plain.
type Kind interface {
	isKind()
}

// Default fills the button with Color as a pill.
type Default struct {
	Color color.NRGBA
}

// Outline strokes a pill of Color around the button, without fill.
type Outline struct {
	Color color.NRGBA
}

// Plain draws no decoration.
type Plain struct{}

func (Default) isKind() {}
func (Outline) isKind() {}
func (Plain) isKind()   {}

// Data describes a single button. It is a value recreated every frame.
type Data struct {
	Title string
	// Color tints both the title and the icon.
	Color color.NRGBA
	// Icon is optional.
	Icon *Icon
	// Kind defaults to Plain when nil.
	Kind Kind
}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		panic("unreachable")
	}
}
