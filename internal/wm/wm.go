package wm

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/mj1618/zwm/internal/model"
	"github.com/mj1618/zwm/internal/platform"
)

// Spawner launches external programs without waiting for them.
type Spawner interface {
	Spawn(cmdline string) error
}

// Options configures a WM.
type Options struct {
	// Modifier is prefixed to every binding key, e.g. "Mod1".
	Modifier string
	Bindings []model.Binding
	Spawner  Spawner
}

// WM is the whole window manager state. It is owned by the goroutine that
// calls Run.
type WM struct {
	display platform.Display
	spawner Spawner

	registry    *Registry
	slots       *Slots
	keys        map[platform.Chord]model.Binding
	lastFocused ClientID
	quit        bool
}

// New builds a WM over d and grabs every binding on the root window.
func New(d platform.Display, opts Options) (*WM, error) {
	screens := d.Screens()
	if len(screens) == 0 {
		return nil, errors.New("display reports no screens")
	}
	for i, r := range screens {
		log.WithFields(log.Fields{"screen": i}).Info("Screen ", r)
	}

	w := &WM{
		display:  d,
		spawner:  opts.Spawner,
		registry: NewRegistry(Workspaces, len(screens)),
		slots:    NewSlots(screens),
	}
	if err := w.grabKeys(opts.Modifier, opts.Bindings); err != nil {
		return nil, err
	}
	return w, nil
}

// Layout returns a snapshot of every occupied slot.
func (w *WM) Layout() model.Layout {
	ws, sc := w.slots.Current()
	l := model.Layout{Workspace: ws, Screen: sc}
	if c, ok := w.registry.Current(ws, sc); ok {
		l.Current = uint32(c.Window)
	}
	for i := 0; i < w.registry.Workspaces(); i++ {
		var screens []model.ScreenLayout
		for j := 0; j < w.registry.Screens(); j++ {
			slot := w.registry.Slot(i, j)
			if len(slot) == 0 {
				continue
			}
			windows := make([]uint32, len(slot))
			for k, c := range slot {
				windows[k] = uint32(c.Window)
			}
			screens = append(screens, model.ScreenLayout{Index: j, Windows: windows})
		}
		if screens != nil {
			l.Workspaces = append(l.Workspaces, model.WorkspaceLayout{Index: i, Screens: screens})
		}
	}
	return l
}

func (w *WM) dumpLayout() {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	log.Debug("Layout\n", w.Layout())
}

// warn logs a failed window command. Failures never stop the caller; the
// window involved is expected to produce its own destroy event.
func warn(err error, op string, win platform.Window) {
	if err == nil {
		return
	}
	log.WithFields(log.Fields{"window": win}).Warn(op, " failed: ", err)
}
