package wm

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/mj1618/zwm/internal/model"
	"github.com/mj1618/zwm/internal/platform"
)

// grabKeys releases every existing grab and then grabs each binding. A
// binding whose key cannot be resolved or grabbed is logged and skipped.
func (w *WM) grabKeys(modifier string, bindings []model.Binding) error {
	if err := w.display.UngrabKeys(); err != nil {
		return fmt.Errorf("ungrab keys: %w", err)
	}
	w.keys = make(map[platform.Chord]model.Binding, len(bindings))
	for _, b := range bindings {
		chord := b.Chord(modifier)
		grabbed, err := w.display.GrabKey(chord)
		if err != nil {
			log.WithFields(log.Fields{"key": chord}).Warn("grab failed: ", err)
			continue
		}
		for _, ch := range grabbed {
			if prev, dup := w.keys[ch]; dup {
				log.WithFields(log.Fields{"key": chord}).Warn("shadows binding for ", prev.Action)
			}
			w.keys[ch] = b
		}
		log.WithFields(log.Fields{"key": chord, "action": b.Action}).Debug("Grab key")
	}
	return nil
}
