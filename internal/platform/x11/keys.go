//go:build linux

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/mj1618/zwm/internal/platform"
)

// GrabKey resolves a chord such as "Mod1-Shift-c" and grabs every keycode
// producing its keysym on the root window.
func (d *Display) GrabKey(chord string) ([]platform.Chord, error) {
	mods, codes, err := keybind.ParseString(d.xu, chord)
	if err != nil {
		return nil, fmt.Errorf("parse key %q: %w", chord, err)
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("key %q has no keycode on this keyboard", chord)
	}
	chords := make([]platform.Chord, 0, len(codes))
	for _, code := range codes {
		err := xproto.GrabKeyChecked(d.conn, true, d.root, mods, code,
			xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
		if err != nil {
			return chords, fmt.Errorf("grab key %q: %w", chord, err)
		}
		chords = append(chords, platform.Chord{Mods: mods, Code: uint8(code)})
	}
	return chords, nil
}

// UngrabKeys releases every key grab held on the root window.
func (d *Display) UngrabKeys() error {
	err := xproto.UngrabKeyChecked(d.conn, xproto.GrabAny, d.root, xproto.ModMaskAny).Check()
	if err != nil {
		return fmt.Errorf("ungrab keys: %w", err)
	}
	return nil
}
