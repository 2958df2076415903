package wm

import "github.com/mj1618/zwm/internal/platform"

// Workspaces is the number of virtual desktops, addressed 0-9.
const Workspaces = 10

// startWorkspace is the workspace active after startup.
const startWorkspace = 1

type cursor struct {
	screen  int
	pointer platform.Point
}

// Slots addresses the workspace × screen table: which workspace is active,
// which screen each workspace is looking at, and where each workspace last
// left the pointer.
type Slots struct {
	workspace int
	last      int
	cursors   [Workspaces]cursor
	screens   []platform.Rect
}

// NewSlots builds the table over a fixed screen topology. At least one
// screen is required.
func NewSlots(screens []platform.Rect) *Slots {
	s := &Slots{
		workspace: startWorkspace,
		last:      startWorkspace,
		screens:   append([]platform.Rect(nil), screens...),
	}
	center := screens[0].Center()
	for i := range s.cursors {
		s.cursors[i] = cursor{screen: 0, pointer: center}
	}
	return s
}

// Current returns the current slot.
func (s *Slots) Current() (ws, sc int) {
	return s.workspace, s.cursors[s.workspace].screen
}

// Workspace returns the active workspace.
func (s *Slots) Workspace() int { return s.workspace }

// Last returns the workspace that was active before the latest switch.
func (s *Slots) Last() int { return s.last }

// Screens returns the number of screens.
func (s *Slots) Screens() int { return len(s.screens) }

// Geometry returns the origin and size of screen sc.
func (s *Slots) Geometry(sc int) platform.Rect { return s.screens[sc] }

// AdvanceScreen moves the active workspace to its next screen. It reports
// false, changing nothing, when there is only one screen.
func (s *Slots) AdvanceScreen() bool {
	if len(s.screens) < 2 {
		return false
	}
	c := &s.cursors[s.workspace]
	c.screen = (c.screen + 1) % len(s.screens)
	return true
}

// SetCurrent makes (ws, sc) the current slot without recording a switch.
func (s *Slots) SetCurrent(ws, sc int) {
	s.workspace = ws
	s.cursors[ws].screen = sc
}

// Activate makes ws active and records the previous workspace as last.
func (s *Slots) Activate(ws int) {
	s.last = s.workspace
	s.workspace = ws
}

// Remember stores the pointer position for workspace ws.
func (s *Slots) Remember(ws int, p platform.Point) { s.cursors[ws].pointer = p }

// Remembered returns the pointer position stored for workspace ws.
func (s *Slots) Remembered(ws int) platform.Point { return s.cursors[ws].pointer }

// Screen returns the current screen of workspace ws.
func (s *Slots) Screen(ws int) int { return s.cursors[ws].screen }
