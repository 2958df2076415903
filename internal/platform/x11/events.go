//go:build linux

package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/mj1618/zwm/internal/platform"
)

// translate maps a core protocol event onto its platform variant.
func translate(ev xgb.Event) platform.Event {
	switch e := ev.(type) {
	case xproto.MapRequestEvent:
		return platform.MapRequest{Window: platform.Window(e.Window)}
	case xproto.DestroyNotifyEvent:
		return platform.DestroyNotify{Window: platform.Window(e.Window)}
	case xproto.EnterNotifyEvent:
		return platform.EnterNotify{Window: platform.Window(e.Event)}
	case xproto.KeyPressEvent:
		return platform.KeyPress{Code: uint8(e.Detail), State: e.State}
	case xproto.UnmapNotifyEvent:
		return platform.Ignored{Kind: "UnmapNotify"}
	case xproto.CreateNotifyEvent:
		return platform.Ignored{Kind: "CreateNotify"}
	case xproto.MapNotifyEvent:
		return platform.Ignored{Kind: "MapNotify"}
	case xproto.MappingNotifyEvent:
		return platform.Ignored{Kind: "MappingNotify"}
	case xproto.ConfigureNotifyEvent:
		return platform.Ignored{Kind: "ConfigureNotify"}
	case xproto.ConfigureRequestEvent:
		return platform.Ignored{Kind: "ConfigureRequest"}
	case xproto.KeyReleaseEvent:
		return platform.Ignored{Kind: "KeyRelease"}
	case xproto.ClientMessageEvent:
		return platform.Ignored{Kind: "ClientMessage"}
	}
	return platform.Unsupported{Code: eventCode(ev)}
}

// eventCode reads the wire event code, with the send-event bit cleared.
func eventCode(ev xgb.Event) int {
	b := ev.Bytes()
	if len(b) == 0 {
		return -1
	}
	return int(b[0] & 0x7f)
}
