package wm

import (
	log "github.com/sirupsen/logrus"

	"github.com/mj1618/zwm/internal/config"
	"github.com/mj1618/zwm/internal/model"
)

func (w *WM) invoke(b model.Binding) {
	switch b.Action {
	case model.ActionSpawn:
		w.Spawn(b.Arg)
	case model.ActionClose:
		w.CloseCurrent()
	case model.ActionQuit:
		w.Quit()
	case model.ActionWorkspace:
		ws, err := config.ParseWorkspace(b.Arg)
		if err != nil {
			log.Warn(err)
			return
		}
		w.SwitchTo(ws)
	case model.ActionWorkspaceBack:
		w.SwitchBack()
	case model.ActionNextClient:
		w.NextClient()
	case model.ActionNextScreen:
		w.AdvanceScreen()
	default:
		log.Warnf("unknown action %q", b.Action)
	}
}

// Spawn launches cmdline detached from the window manager.
func (w *WM) Spawn(cmdline string) {
	if w.spawner == nil {
		log.Warn("spawn ", cmdline, ": no spawner")
		return
	}
	log.WithFields(log.Fields{"cmd": cmdline}).Debug("Spawn")
	if err := w.spawner.Spawn(cmdline); err != nil {
		log.WithFields(log.Fields{"cmd": cmdline}).Warn("spawn failed: ", err)
	}
}

// CloseCurrent closes the current client of the current slot. Clients that
// support WM_DELETE_WINDOW are asked to close and remain registered until
// they are destroyed; others are destroyed under a server grab.
func (w *WM) CloseCurrent() {
	ws, sc := w.slots.Current()
	c, ok := w.registry.Current(ws, sc)
	if !ok {
		return
	}
	if w.display.SupportsDelete(c.Window) {
		log.WithFields(log.Fields{"window": c.Window}).Debug("Close client")
		warn(w.display.RequestClose(c.Window), "request close", c.Window)
		warn(w.display.Sync(), "sync", c.Window)
		return
	}

	log.WithFields(log.Fields{"window": c.Window}).Debug("Close client [force]")
	warn(w.display.GrabServer(), "grab server", c.Window)
	warn(w.display.Destroy(c.Window), "destroy", c.Window)
	w.forget(c)
	warn(w.display.Sync(), "sync", c.Window)
	warn(w.display.UngrabServer(), "ungrab server", c.Window)
	w.focus()
	w.dumpLayout()
}

// NextClient makes the successor of the current client current.
func (w *WM) NextClient() {
	ws, sc := w.slots.Current()
	if _, ok := w.registry.Advance(ws, sc); !ok {
		return
	}
	w.focus()
}

// Quit ends Run after the current event.
func (w *WM) Quit() {
	w.quit = true
}

// Shutdown closes every client, releases the key grabs and closes the
// display. Graceful clients are asked to close; the rest are destroyed.
func (w *WM) Shutdown() {
	var all []Client
	for ws := 0; ws < w.registry.Workspaces(); ws++ {
		for sc := 0; sc < w.registry.Screens(); sc++ {
			all = append(all, w.registry.Slot(ws, sc)...)
		}
	}
	log.WithFields(log.Fields{"clients": len(all)}).Info("Shutdown")

	for _, c := range all {
		if w.display.SupportsDelete(c.Window) {
			warn(w.display.RequestClose(c.Window), "request close", c.Window)
		} else {
			warn(w.display.Destroy(c.Window), "destroy", c.Window)
		}
		w.forget(c)
	}
	warn(w.display.UngrabKeys(), "ungrab keys", 0)
	warn(w.display.Sync(), "sync", 0)
	w.display.Close()
}
