package wm

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/mj1618/zwm/internal/platform"
)

// Run pulls events and handles each to completion until a quit binding
// fires (nil) or the connection is lost (error).
func (w *WM) Run() error {
	for !w.quit {
		ev, err := w.display.NextEvent()
		if err != nil {
			var perr *platform.ProtocolError
			if errors.As(err, &perr) {
				log.Warn("error: ", perr)
				continue
			}
			return err
		}
		w.Dispatch(ev)
	}
	log.Info("Quit")
	return nil
}

// Dispatch handles one event.
func (w *WM) Dispatch(ev platform.Event) {
	switch e := ev.(type) {
	case platform.MapRequest:
		w.mapRequest(e.Window)
	case platform.DestroyNotify:
		w.destroyNotify(e.Window)
	case platform.EnterNotify:
		w.enterNotify(e.Window)
	case platform.KeyPress:
		w.keyPress(platform.Chord{Mods: e.State, Code: e.Code})
	case platform.Ignored:
	case platform.Unsupported:
		log.WithFields(log.Fields{"code": e.Code}).Warn("unsupported event")
	default:
		log.Warnf("unsupported event %T", ev)
	}
}

func (w *WM) mapRequest(win platform.Window) {
	c, ok := w.registry.Find(win)
	if !ok {
		ws, sc := w.slots.Current()
		c = w.registry.Create(win, ws, sc)
	}
	log.WithFields(log.Fields{
		"window":    win,
		"workspace": c.Workspace,
		"screen":    c.Screen,
	}).Debug("Map request")

	warn(w.display.MoveResize(win, w.slots.Geometry(c.Screen)), "move resize", win)
	warn(w.display.SelectEnter(win), "select input", win)
	warn(w.display.Map(win), "map", win)
	w.focus()
	w.dumpLayout()
}

func (w *WM) destroyNotify(win platform.Window) {
	c, ok := w.registry.Find(win)
	if !ok {
		return
	}
	log.WithFields(log.Fields{
		"window":    win,
		"workspace": c.Workspace,
		"screen":    c.Screen,
	}).Debug("Destroy notify")

	w.forget(c)
	w.focus()
	w.dumpLayout()
}

func (w *WM) enterNotify(win platform.Window) {
	c, ok := w.registry.Find(win)
	if !ok {
		return
	}
	log.WithFields(log.Fields{
		"window":    win,
		"workspace": c.Workspace,
		"screen":    c.Screen,
	}).Debug("Enter notify")

	w.slots.SetCurrent(c.Workspace, c.Screen)
	w.focus()
}

func (w *WM) keyPress(ch platform.Chord) {
	b, ok := w.keys[ch]
	if !ok {
		return
	}
	log.WithFields(log.Fields{"action": b.Action, "arg": b.Arg}).Debug("Key press")
	w.invoke(b)
}
