// SPDX-License-Identifier: Unlicense OR MIT

package catalog

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/customui/custombutton/button"
)

var (
	blue  = color.NRGBA{R: 0x00, G: 0x7a, B: 0xff, A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func TestDefault(t *testing.T) {
	bs := Default()
	if len(bs) != 9 {
		t.Fatalf("default catalog has %d buttons, expected 9", len(bs))
	}

	plain := bs[0]
	if plain.Title != "plain" || plain.Color != blue || plain.Icon != nil || plain.Kind != (button.Plain{}) {
		t.Errorf("unexpected plain button %+v", plain)
	}

	def := bs[4]
	if def.Color != white || def.Kind != (button.Default{Color: blue}) {
		t.Errorf("unexpected default button %+v", def)
	}
	if def.Icon == nil || *def.Icon != (button.Icon{Side: button.SideLeft, Name: "square.and.pencil"}) {
		t.Errorf("default left icon button has icon %v", def.Icon)
	}

	outline := bs[8]
	if outline.Color != blue || outline.Kind != (button.Outline{Color: blue}) {
		t.Errorf("unexpected outline button %+v", outline)
	}
	if outline.Icon == nil || outline.Icon.Side != button.SideRight {
		t.Errorf("outline right icon button has icon %v", outline.Icon)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"blue", blue},
		{"White", white},
		{"#007aff", blue},
		{"#ff000080", color.NRGBA{R: 0xff, A: 0x80}},
		{" clear ", color.NRGBA{}},
		{"#34C759", named["green"]},
		{"#8e8e93ff", named["gray"]},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
	for _, in := range []string{"", "#12345", "#12345g", "#zzzzzz", "#007affzz", "purple", "007aff"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalid) {
			t.Errorf("ParseColor(%q) error %v, expected ErrInvalid", in, err)
		}
	}
}

func TestParseIcon(t *testing.T) {
	ic, err := ParseIcon("")
	if err != nil || ic != nil {
		t.Errorf("empty icon parsed as %v, %v", ic, err)
	}
	ic, err = ParseIcon("right:star")
	if err != nil || *ic != (button.Icon{Side: button.SideRight, Name: "star"}) {
		t.Errorf("right:star parsed as %v, %v", ic, err)
	}
	for _, in := range []string{"left", "left:", "up:star"} {
		if _, err := ParseIcon(in); !errors.Is(err, ErrInvalid) {
			t.Errorf("ParseIcon(%q) error %v, expected ErrInvalid", in, err)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want button.Kind
	}{
		{"", button.Plain{}},
		{"plain", button.Plain{}},
		{"default:blue", button.Default{Color: blue}},
		{"outline:#007aff", button.Outline{Color: blue}},
	}
	for _, tc := range tests {
		got, err := ParseKind(tc.in)
		if err != nil {
			t.Errorf("ParseKind(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseKind(%q) = %#v, expected %#v", tc.in, got, tc.want)
		}
	}
	for _, in := range []string{"default", "plain:blue", "outline:nope", "filled:blue"} {
		if _, err := ParseKind(in); !errors.Is(err, ErrInvalid) {
			t.Errorf("ParseKind(%q) error %v, expected ErrInvalid", in, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("[[button]]\ntitle = ")); err == nil {
		t.Error("malformed TOML accepted")
	}
	_, err := Parse([]byte("[[button]]\ntitle = \"x\"\nshape = \"round\"\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown key error %v, expected ErrInvalid", err)
	}
	_, err = Parse([]byte("[[button]]\ntitle = \"ok\"\ncolor = \"blue\"\n\n[[button]]\ntitle = \"bad\"\ncolor = \"mauve\"\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("bad color error %v, expected ErrInvalid", err)
	}
	if got, exp := err.Error(), `button 1: color "mauve": invalid value`; got != exp {
		t.Errorf("error is %q, expected %q", got, exp)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buttons.toml")
	src := "[[button]]\ntitle = \"save\"\ncolor = \"#ffffff\"\nicon = \"left:checkmark\"\nkind = \"default:green\"\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	bs, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(bs) != 1 || bs[0].Title != "save" || bs[0].Kind != (button.Default{Color: named["green"]}) {
		t.Errorf("unexpected catalog %+v", bs)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error %v, expected ErrNotExist", err)
	}
}
