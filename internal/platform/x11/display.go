//go:build linux

package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/BurntSushi/xgbutil/xprop"
	log "github.com/sirupsen/logrus"

	"github.com/mj1618/zwm/internal/platform"
)

// ErrAnotherWM is returned when the root window is already redirected.
var ErrAnotherWM = errors.New("another window manager is already running")

const rootEventMask = xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify

// Display implements platform.Display for an X server.
type Display struct {
	xu      *xgbutil.XUtil
	conn    *xgb.Conn
	root    xproto.Window
	empty   xproto.Window
	cursor  xproto.Cursor
	screens []platform.Rect

	wmProtocols xproto.Atom
	wmDelete    xproto.Atom
}

// Open connects to $DISPLAY and takes over the root window.
func Open() (*Display, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("cannot open display: %w", err)
	}
	keybind.Initialize(xu)

	d := &Display{
		xu:   xu,
		conn: xu.Conn(),
		root: xu.RootWin(),
	}
	if err := d.setup(); err != nil {
		d.conn.Close()
		return nil, err
	}
	return d, nil
}

func (d *Display) setup() error {
	var err error
	if d.wmProtocols, err = xprop.Atm(d.xu, "WM_PROTOCOLS"); err != nil {
		return fmt.Errorf("intern WM_PROTOCOLS: %w", err)
	}
	if d.wmDelete, err = xprop.Atm(d.xu, "WM_DELETE_WINDOW"); err != nil {
		return fmt.Errorf("intern WM_DELETE_WINDOW: %w", err)
	}

	if d.cursor, err = xcursor.CreateCursor(d.xu, xcursor.LeftPtr); err != nil {
		return fmt.Errorf("create cursor: %w", err)
	}
	err = xproto.ChangeWindowAttributesChecked(d.conn, d.root,
		xproto.CwEventMask|xproto.CwCursor,
		[]uint32{rootEventMask, uint32(d.cursor)},
	).Check()
	if err != nil {
		if _, ok := err.(xproto.AccessError); ok {
			return ErrAnotherWM
		}
		return fmt.Errorf("select root events: %w", err)
	}

	screen := d.xu.Screen()
	if err := d.createPlaceholder(screen); err != nil {
		return err
	}
	d.screens = d.queryScreens(screen)
	return d.Sync()
}

// createPlaceholder creates the black window raised over everything while
// switching workspaces.
func (d *Display) createPlaceholder(screen *xproto.ScreenInfo) error {
	wid, err := xproto.NewWindowId(d.conn)
	if err != nil {
		return fmt.Errorf("allocate placeholder id: %w", err)
	}
	err = xproto.CreateWindowChecked(d.conn, screen.RootDepth, wid, d.root,
		0, 0, screen.WidthInPixels, screen.HeightInPixels, 0,
		xproto.WindowClassInputOutput, screen.RootVisual,
		xproto.CwBackPixel|xproto.CwBorderPixel|xproto.CwOverrideRedirect,
		[]uint32{screen.BlackPixel, screen.WhitePixel, 1},
	).Check()
	if err != nil {
		return fmt.Errorf("create placeholder: %w", err)
	}
	d.empty = wid
	log.WithFields(log.Fields{"root": d.root, "empty": d.empty}).Debug("placeholder created")

	xproto.MapWindow(d.conn, d.empty)
	return d.RaisePlaceholder()
}

// queryScreens returns the Xinerama heads, or the root geometry when
// Xinerama is unavailable.
func (d *Display) queryScreens(screen *xproto.ScreenInfo) []platform.Rect {
	fallback := []platform.Rect{{
		Width:  int(screen.WidthInPixels),
		Height: int(screen.HeightInPixels),
	}}
	if err := xinerama.Init(d.conn); err != nil {
		log.WithError(err).Warn("Xinerama is not available")
		return fallback
	}
	active, err := xinerama.IsActive(d.conn).Reply()
	if err != nil || active.State == 0 {
		log.Warn("Xinerama is not active")
		return fallback
	}
	reply, err := xinerama.QueryScreens(d.conn).Reply()
	if err != nil || len(reply.ScreenInfo) == 0 {
		log.WithError(err).Warn("Xinerama returned no screens")
		return fallback
	}
	screens := make([]platform.Rect, len(reply.ScreenInfo))
	for i, s := range reply.ScreenInfo {
		screens[i] = platform.Rect{
			X:      int(s.XOrg),
			Y:      int(s.YOrg),
			Width:  int(s.Width),
			Height: int(s.Height),
		}
	}
	return screens
}

// Screens returns the cached screen topology.
func (d *Display) Screens() []platform.Rect {
	return d.screens
}

// Close releases the placeholder and the cursor, then drops the connection.
func (d *Display) Close() {
	if d.empty != 0 {
		xproto.DestroyWindow(d.conn, d.empty)
	}
	if d.cursor != 0 {
		xproto.FreeCursor(d.conn, d.cursor)
	}
	if err := d.Sync(); err != nil {
		log.WithError(err).Warn("sync before close")
	}
	d.conn.Close()
}

// NextEvent blocks for the next X event.
func (d *Display) NextEvent() (platform.Event, error) {
	ev, xerr := d.conn.WaitForEvent()
	if ev == nil && xerr == nil {
		return nil, platform.ErrConnectionClosed
	}
	if xerr != nil {
		return nil, &platform.ProtocolError{
			Sequence: xerr.SequenceId(),
			BadID:    xerr.BadId(),
			Message:  xerr.Error(),
		}
	}
	return translate(ev), nil
}
