package wm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mj1618/zwm/internal/model"
	"github.com/mj1618/zwm/internal/platform"
)

// fakeDisplay records every outbound command and replays queued events.
type fakeDisplay struct {
	screens   []platform.Rect
	events    []platform.Event
	errs      []error
	cmds      []string
	pointer   platform.Point
	graceful  map[platform.Window]bool
	keycodes  map[string]uint8
	grabFails map[string]bool
	closed    bool
}

func newFakeDisplay(screens ...platform.Rect) *fakeDisplay {
	if len(screens) == 0 {
		screens = []platform.Rect{{X: 0, Y: 0, Width: 1920, Height: 1080}}
	}
	return &fakeDisplay{
		screens:   screens,
		graceful:  map[platform.Window]bool{},
		keycodes:  map[string]uint8{},
		grabFails: map[string]bool{},
	}
}

func (d *fakeDisplay) record(format string, args ...any) {
	d.cmds = append(d.cmds, fmt.Sprintf(format, args...))
}

// reset clears the command log.
func (d *fakeDisplay) reset() { d.cmds = nil }

func (d *fakeDisplay) count(prefix string) int {
	n := 0
	for _, c := range d.cmds {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (d *fakeDisplay) queue(evs ...platform.Event) { d.events = append(d.events, evs...) }

func (d *fakeDisplay) NextEvent() (platform.Event, error) {
	if len(d.errs) > 0 {
		err := d.errs[0]
		d.errs = d.errs[1:]
		return nil, err
	}
	if len(d.events) == 0 {
		return nil, platform.ErrConnectionClosed
	}
	ev := d.events[0]
	d.events = d.events[1:]
	return ev, nil
}

func (d *fakeDisplay) MoveResize(w platform.Window, r platform.Rect) error {
	d.record("moveresize %d %d,%d %dx%d", w, r.X, r.Y, r.Width, r.Height)
	return nil
}
func (d *fakeDisplay) SelectEnter(w platform.Window) error { d.record("select %d", w); return nil }
func (d *fakeDisplay) Map(w platform.Window) error         { d.record("map %d", w); return nil }
func (d *fakeDisplay) Raise(w platform.Window) error       { d.record("raise %d", w); return nil }
func (d *fakeDisplay) SetInputFocus(w platform.Window) error {
	d.record("focus %d", w)
	return nil
}
func (d *fakeDisplay) Destroy(w platform.Window) error { d.record("destroy %d", w); return nil }
func (d *fakeDisplay) SupportsDelete(w platform.Window) bool {
	return d.graceful[w]
}
func (d *fakeDisplay) RequestClose(w platform.Window) error {
	d.record("close %d", w)
	return nil
}
func (d *fakeDisplay) RaisePlaceholder() error { d.record("raise placeholder"); return nil }
func (d *fakeDisplay) GrabServer() error       { d.record("grab server"); return nil }
func (d *fakeDisplay) UngrabServer() error     { d.record("ungrab server"); return nil }
func (d *fakeDisplay) Sync() error             { d.record("sync"); return nil }

func (d *fakeDisplay) QueryPointer() (platform.Point, error) { return d.pointer, nil }
func (d *fakeDisplay) WarpPointer(p platform.Point) error {
	d.pointer = p
	d.record("warp %d,%d", p.X, p.Y)
	return nil
}

// GrabKey resolves a chord to a fixed (mods, code) pair. Modifiers map to
// their X masks; the trailing key name is looked up in keycodes.
func (d *fakeDisplay) GrabKey(chord string) ([]platform.Chord, error) {
	if d.grabFails[chord] {
		return nil, fmt.Errorf("no keycode for %q", chord)
	}
	parts := strings.Split(chord, "-")
	var mods uint16
	for _, m := range parts[:len(parts)-1] {
		switch m {
		case "Shift":
			mods |= 1 << 0
		case "Control":
			mods |= 1 << 2
		case "Mod1":
			mods |= 1 << 3
		case "Mod4":
			mods |= 1 << 6
		}
	}
	key := parts[len(parts)-1]
	code, ok := d.keycodes[key]
	if !ok {
		code = uint8(10 + len(d.keycodes))
		d.keycodes[key] = code
	}
	d.record("grab %s", chord)
	return []platform.Chord{{Mods: mods, Code: code}}, nil
}

func (d *fakeDisplay) UngrabKeys() error { d.record("ungrab keys"); return nil }
func (d *fakeDisplay) Screens() []platform.Rect { return d.screens }
func (d *fakeDisplay) Close()                   { d.closed = true; d.record("close display") }

type fakeSpawner struct {
	spawned []string
	err     error
}

func (s *fakeSpawner) Spawn(cmdline string) error {
	s.spawned = append(s.spawned, cmdline)
	return s.err
}

var (
	screenA = platform.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	screenB = platform.Rect{X: 1920, Y: 0, Width: 1280, Height: 1024}
)

func newTestWM(t *testing.T, d *fakeDisplay, bindings ...model.Binding) *WM {
	t.Helper()
	w, err := New(d, Options{Modifier: "Mod1", Bindings: bindings, Spawner: &fakeSpawner{}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	d.reset()
	return w
}

func mustValidate(t *testing.T, r *Registry) {
	t.Helper()
	if err := r.Validate(); err != nil {
		t.Fatalf("registry invalid: %v", err)
	}
}

func windows(clients []Client) []platform.Window {
	out := make([]platform.Window, len(clients))
	for i, c := range clients {
		out[i] = c.Window
	}
	return out
}
