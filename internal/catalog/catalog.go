// SPDX-License-Identifier: Unlicense OR MIT

// Package catalog reads lists of buttons described in TOML.
//
// A catalog is a sequence of button tables:
//
//	[[button]]
//	title = "default left icon"
//	color = "white"
//	icon = "left:square.and.pencil"
//	kind = "default:blue"
//
// Colors are #rrggbb, #rrggbbaa or a color name. Icons are empty,
// left:<name> or right:<name>. Kinds are plain, default:<color> or
// outline:<color>.
package catalog

import (
	_ "embed"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/customui/custombutton/button"
)

//go:embed default.toml
var defaultCatalog []byte

const hexDigits = "0123456789abcdefABCDEF"

// ErrInvalid is wrapped by errors for malformed values.
var ErrInvalid = errors.New("invalid value")

var named = map[string]color.NRGBA{
	"black": {A: 0xff},
	"blue":  {R: 0x00, G: 0x7a, B: 0xff, A: 0xff},
	"clear": {},
	"gray":  {R: 0x8e, G: 0x8e, B: 0x93, A: 0xff},
	"green": {R: 0x34, G: 0xc7, B: 0x59, A: 0xff},
	"red":   {R: 0xff, G: 0x3b, B: 0x30, A: 0xff},
	"white": {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

type entry struct {
	Title string `toml:"title"`
	Color string `toml:"color"`
	Icon  string `toml:"icon"`
	Kind  string `toml:"kind"`
}

type document struct {
	Buttons []entry `toml:"button"`
}

// Default returns the built in catalog: plain, default and outline
// buttons, each without icon, with a left icon and with a right icon.
func Default() []button.Data {
	bs, err := Parse(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return bs
}

// Load reads the catalog at path.
func Load(path string) ([]button.Data, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog")
	}
	bs, err := Parse(src)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return bs, nil
}

// Parse decodes a TOML catalog. Unknown keys are an error.
func Parse(src []byte) ([]button.Data, error) {
	var doc document
	md, err := toml.Decode(string(src), &doc)
	if err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Wrapf(ErrInvalid, "unknown key %q", undecoded[0].String())
	}

	bs := make([]button.Data, 0, len(doc.Buttons))
	for i, e := range doc.Buttons {
		d, err := e.data()
		if err != nil {
			return nil, errors.Wrapf(err, "button %d", i)
		}
		bs = append(bs, d)
	}
	return bs, nil
}

func (e entry) data() (button.Data, error) {
	c, err := ParseColor(e.Color)
	if err != nil {
		return button.Data{}, err
	}
	ic, err := ParseIcon(e.Icon)
	if err != nil {
		return button.Data{}, err
	}
	k, err := ParseKind(e.Kind)
	if err != nil {
		return button.Data{}, err
	}
	return button.Data{Title: e.Title, Color: c, Icon: ic, Kind: k}, nil
}

// ParseColor parses #rrggbb, #rrggbbaa or a color name.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := named[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) || strings.Trim(hex, hexDigits) != "" {
		return color.NRGBA{}, errors.Wrapf(ErrInvalid, "color %q", s)
	}
	alpha := uint64(0xff)
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, errors.Wrapf(ErrInvalid, "color %q", s)
		}
		alpha = a
	}
	c, err := colorful.Hex("#" + hex[:6])
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(ErrInvalid, "color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha)}, nil
}

// ParseIcon parses an empty string as no icon, and left:<name> or
// right:<name> as an icon on that side.
func ParseIcon(s string) (*button.Icon, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	side, name, ok := strings.Cut(s, ":")
	if !ok || name == "" {
		return nil, errors.Wrapf(ErrInvalid, "icon %q", s)
	}
	switch side {
	case "left":
		return button.Left(name), nil
	case "right":
		return button.Right(name), nil
	default:
		return nil, errors.Wrapf(ErrInvalid, "icon side %q", side)
	}
}

// ParseKind parses plain, default:<color> or outline:<color>. An empty
// string is plain.
func ParseKind(s string) (button.Kind, error) {
	s = strings.TrimSpace(s)
	kind, arg, hasArg := strings.Cut(s, ":")
	switch kind {
	case "", "plain":
		if hasArg {
			return nil, errors.Wrapf(ErrInvalid, "kind %q takes no color", s)
		}
		return button.Plain{}, nil
	case "default", "outline":
		if !hasArg {
			return nil, errors.Wrapf(ErrInvalid, "kind %q needs a color", s)
		}
		c, err := ParseColor(arg)
		if err != nil {
			return nil, err
		}
		if kind == "default" {
			return button.Default{Color: c}, nil
		}
		return button.Outline{Color: c}, nil
	default:
		return nil, errors.Wrapf(ErrInvalid, "kind %q", s)
	}
}
