// SPDX-License-Identifier: Unlicense OR MIT

// Package glyph resolves symbol names to icons.
//
// A small set of common symbol names is built in, backed by the
// Material Design icons in IconVG format. Programs add their own with
// Register:
//
//	if err := glyph.Register("rocket", rocketIVG); err != nil {
//		log.Fatal(err)
//	}
//
// Decoded icons are cached. All functions are safe for concurrent use.
package glyph

import (
	"sort"
	"sync"

	"gioui.org/widget"
	"github.com/pkg/errors"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var builtin = map[string][]byte{
	"arrow.left":          icons.NavigationArrowBack,
	"arrow.right":         icons.NavigationArrowForward,
	"checkmark":           icons.NavigationCheck,
	"gear":                icons.ActionSettings,
	"heart":               icons.ActionFavorite,
	"house":               icons.ActionHome,
	"info.circle":         icons.ActionInfo,
	"magnifyingglass":     icons.ActionSearch,
	"paperplane":          icons.ContentSend,
	"pencil":              icons.ContentCreate,
	"plus":                icons.ContentAdd,
	"square.and.arrow.up": icons.SocialShare,
	"square.and.pencil":   icons.EditorModeEdit,
	"star":                icons.ToggleStar,
	"trash":               icons.ActionDelete,
	"xmark":               icons.NavigationClose,
}

var (
	mu         sync.Mutex
	registered = make(map[string][]byte)
	cache      = make(map[string]*widget.Icon)
)

// ErrEmptyName is returned by Register for an empty symbol name.
var ErrEmptyName = errors.New("glyph: empty name")

// Lookup returns the icon registered for name.
func Lookup(name string) (*widget.Icon, bool) {
	mu.Lock()
	defer mu.Unlock()
	if ic, ok := cache[name]; ok {
		return ic, true
	}
	src, ok := registered[name]
	if !ok {
		src, ok = builtin[name]
	}
	if !ok {
		return nil, false
	}
	ic, err := widget.NewIcon(src)
	if err != nil {
		// Built-in data is known to decode; registered data was checked.
		return nil, false
	}
	cache[name] = ic
	return ic, true
}

// Register makes the IconVG data src available under name, replacing
// any earlier icon of that name.
func Register(name string, src []byte) error {
	if name == "" {
		return ErrEmptyName
	}
	ic, err := widget.NewIcon(src)
	if err != nil {
		return errors.Wrapf(err, "glyph: decode %q", name)
	}
	mu.Lock()
	defer mu.Unlock()
	registered[name] = src
	cache[name] = ic
	return nil
}

// Names returns the sorted names of all known symbols.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()
	seen := make(map[string]struct{}, len(builtin)+len(registered))
	for n := range builtin {
		seen[n] = struct{}{}
	}
	for n := range registered {
		seen[n] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
