// SPDX-License-Identifier: Unlicense OR MIT

package glyph

import (
	"sort"
	"testing"

	"golang.org/x/exp/shiny/materialdesign/icons"
)

func TestLookupBuiltin(t *testing.T) {
	for name := range builtin {
		ic, ok := Lookup(name)
		if !ok || ic == nil {
			t.Errorf("Lookup(%q) failed", name)
		}
	}
}

func TestLookupCached(t *testing.T) {
	a, _ := Lookup("square.and.pencil")
	b, _ := Lookup("square.and.pencil")
	if a != b {
		t.Error("repeated lookups returned different icons")
	}
}

func TestLookupUnknown(t *testing.T) {
	if ic, ok := Lookup("no.such.symbol"); ok || ic != nil {
		t.Errorf("Lookup of unknown name returned %v, %v", ic, ok)
	}
}

func TestRegister(t *testing.T) {
	if err := Register("test.alarm", icons.ActionAlarm); err != nil {
		t.Fatal(err)
	}
	if _, ok := Lookup("test.alarm"); !ok {
		t.Error("registered glyph not found")
	}
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	i := sort.SearchStrings(names, "test.alarm")
	if i == len(names) || names[i] != "test.alarm" {
		t.Error("registered glyph missing from Names")
	}
}

func TestRegisterInvalid(t *testing.T) {
	if err := Register("", icons.ActionAlarm); err != ErrEmptyName {
		t.Errorf("got %v, expected ErrEmptyName", err)
	}
	if err := Register("test.garbage", []byte("not iconvg")); err == nil {
		t.Error("invalid data accepted")
	}
	if _, ok := Lookup("test.garbage"); ok {
		t.Error("invalid glyph was registered")
	}
}
