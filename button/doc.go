// SPDX-License-Identifier: Unlicense OR MIT

// Package button implements a pill shaped button with a title and an
// optional leading or trailing icon.
//
// A button is described by a Data value, rebuilt every frame:
//
//	data := button.Data{
//		Title: "outline right icon",
//		Color: blue,
//		Icon:  button.Right("square.and.pencil"),
//		Kind:  button.Outline{Color: blue},
//	}
//	button.New(th, data).Layout(gtx)
//
// Kinds
//
// The Kind of a button selects its decoration: Default fills a pill
// behind the content, Outline strokes a pill around it and Plain draws
// the content alone. The icon side never affects the decoration.
//
// Icons
//
// Icon names are resolved by package glyph. The icon is tinted with the
// title color and placed before (Left) or after (Right) the title,
// separated by a LabelStyle spacing. A button without icon lays out its
// padded title directly.
//
// Interaction
//
// Buttons are presentational unless a widget.Clickable is attached with
// Style.Clickable.
package button
