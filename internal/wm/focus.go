package wm

import log "github.com/sirupsen/logrus"

// focus raises and focuses the current client of the current slot. Every
// state change ends here. Refocusing the last-focused client issues nothing.
func (w *WM) focus() {
	ws, sc := w.slots.Current()
	c, ok := w.registry.Current(ws, sc)
	if !ok || c.ID == w.lastFocused {
		return
	}

	log.WithFields(log.Fields{
		"window":    c.Window,
		"workspace": ws,
		"screen":    sc,
	}).Debug("Focus client")

	warn(w.display.Raise(c.Window), "raise", c.Window)
	warn(w.display.SetInputFocus(c.Window), "set input focus", c.Window)
	warn(w.display.Sync(), "sync", c.Window)
	w.lastFocused = c.ID
}

// forget unregisters c and clears lastFocused if it pointed at c.
func (w *WM) forget(c Client) {
	w.registry.Delete(c.ID)
	if w.lastFocused == c.ID {
		w.lastFocused = noClient
	}
}
