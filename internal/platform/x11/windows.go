//go:build linux

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/mj1618/zwm/internal/platform"
)

// Requests below are unchecked: failures come back asynchronously through
// NextEvent as *platform.ProtocolError.

func (d *Display) MoveResize(w platform.Window, r platform.Rect) error {
	xproto.ConfigureWindow(d.conn, xproto.Window(w),
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(r.X), uint32(r.Y), uint32(r.Width), uint32(r.Height)},
	)
	return nil
}

func (d *Display) SelectEnter(w platform.Window) error {
	xproto.ChangeWindowAttributes(d.conn, xproto.Window(w),
		xproto.CwEventMask, []uint32{xproto.EventMaskEnterWindow})
	return nil
}

func (d *Display) Map(w platform.Window) error {
	xproto.MapWindow(d.conn, xproto.Window(w))
	return nil
}

func (d *Display) Raise(w platform.Window) error {
	d.raise(xproto.Window(w))
	return nil
}

func (d *Display) RaisePlaceholder() error {
	d.raise(d.empty)
	return nil
}

func (d *Display) raise(w xproto.Window) {
	xproto.ConfigureWindow(d.conn, w, xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove})
}

func (d *Display) SetInputFocus(w platform.Window) error {
	xproto.SetInputFocus(d.conn, xproto.InputFocusPointerRoot,
		xproto.Window(w), xproto.TimeCurrentTime)
	return nil
}

func (d *Display) Destroy(w platform.Window) error {
	xproto.DestroyWindow(d.conn, xproto.Window(w))
	return nil
}

// SupportsDelete reports whether WM_DELETE_WINDOW is listed in the
// window's WM_PROTOCOLS.
func (d *Display) SupportsDelete(w platform.Window) bool {
	protocols, err := icccm.WmProtocolsGet(d.xu, xproto.Window(w))
	if err != nil {
		return false
	}
	for _, p := range protocols {
		if p == "WM_DELETE_WINDOW" {
			return true
		}
	}
	return false
}

func (d *Display) RequestClose(w platform.Window) error {
	msg := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(w),
		Type:   d.wmProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(d.wmDelete),
			xproto.TimeCurrentTime,
			0,
			0,
			0,
		}),
	}
	err := xproto.SendEventChecked(d.conn, false, xproto.Window(w),
		xproto.EventMaskNoEvent, string(msg.Bytes())).Check()
	if err != nil {
		return fmt.Errorf("send WM_DELETE_WINDOW to %d: %w", w, err)
	}
	return nil
}

func (d *Display) GrabServer() error {
	xproto.GrabServer(d.conn)
	return nil
}

func (d *Display) UngrabServer() error {
	xproto.UngrabServer(d.conn)
	return nil
}

// Sync round-trips to the server so every queued request has been handled.
func (d *Display) Sync() error {
	if _, err := xproto.GetInputFocus(d.conn).Reply(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	return nil
}

func (d *Display) QueryPointer() (platform.Point, error) {
	reply, err := xproto.QueryPointer(d.conn, d.root).Reply()
	if err != nil {
		return platform.Point{}, fmt.Errorf("query pointer: %w", err)
	}
	return platform.Point{X: int(reply.RootX), Y: int(reply.RootY)}, nil
}

func (d *Display) WarpPointer(p platform.Point) error {
	xproto.WarpPointer(d.conn, xproto.WindowNone, d.root,
		0, 0, 0, 0, int16(p.X), int16(p.Y))
	return nil
}
