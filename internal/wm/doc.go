/*
Package wm is the window manager core: the client registry, slot addressing,
focus arbitration, the workspace switcher and the event dispatcher.

A slot is one (workspace, screen) cell of a fixed table sized Workspaces ×
detected screens. Each occupied slot holds a circular list of clients and
remembers which of them is current. Every state change funnels through
WM.focus, which raises and focuses the current client of the current slot.

The core is single-writer: WM.Run pulls one event at a time and handles it
to completion. Nothing in this package locks, and no method may be called
from another goroutine while Run is active.
*/
package wm
