package wm

import log "github.com/sirupsen/logrus"

// SwitchTo makes target the active workspace. Switching to the active
// workspace is a no-op.
func (w *WM) SwitchTo(target int) {
	from := w.slots.Workspace()
	if target == from || target < 0 || target >= Workspaces {
		return
	}
	log.WithFields(log.Fields{"workspace": target}).Debug("Switch workspace from ", from)

	if p, err := w.display.QueryPointer(); err == nil {
		w.slots.Remember(from, p)
	} else {
		log.Warn("query pointer failed: ", err)
	}
	w.slots.Activate(target)

	warn(w.display.RaisePlaceholder(), "raise placeholder", 0)
	warn(w.display.Sync(), "sync", 0)
	for sc := 0; sc < w.slots.Screens(); sc++ {
		if c, ok := w.registry.Current(target, sc); ok {
			warn(w.display.Raise(c.Window), "raise", c.Window)
		}
	}
	warn(w.display.WarpPointer(w.slots.Remembered(target)), "warp pointer", 0)
	w.focus()
}

// SwitchBack returns to the workspace active before the latest switch.
func (w *WM) SwitchBack() {
	w.SwitchTo(w.slots.Last())
}

// AdvanceScreen moves attention to the next screen of the active workspace
// and centers the pointer on it. Nothing happens with a single screen.
func (w *WM) AdvanceScreen() {
	if !w.slots.AdvanceScreen() {
		return
	}
	ws, sc := w.slots.Current()
	log.WithFields(log.Fields{"workspace": ws, "screen": sc}).Debug("Advance screen")
	warn(w.display.WarpPointer(w.slots.Geometry(sc).Center()), "warp pointer", 0)
	w.focus()
}
