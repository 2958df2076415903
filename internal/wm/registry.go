package wm

import (
	"fmt"

	"github.com/mj1618/zwm/internal/platform"
)

// ClientID identifies a client record in the registry arena.
// IDs are never reused within a process.
type ClientID uint64

const noClient ClientID = 0

// Client is one managed window.
type Client struct {
	ID        ClientID
	Window    platform.Window
	Workspace int
	Screen    int

	next, prev ClientID
}

// Registry owns every client record. Each occupied slot holds a circular
// doubly-linked list of clients, linked by ID rather than by pointer.
type Registry struct {
	clients map[ClientID]*Client
	current [][]ClientID // [workspace][screen]
	lastID  ClientID
}

// NewRegistry creates an empty workspaces × screens table.
func NewRegistry(workspaces, screens int) *Registry {
	current := make([][]ClientID, workspaces)
	for i := range current {
		current[i] = make([]ClientID, screens)
	}
	return &Registry{
		clients: make(map[ClientID]*Client),
		current: current,
	}
}

// Workspaces returns the number of workspaces in the table.
func (r *Registry) Workspaces() int { return len(r.current) }

// Screens returns the number of screens per workspace.
func (r *Registry) Screens() int {
	if len(r.current) == 0 {
		return 0
	}
	return len(r.current[0])
}

// Len returns the number of managed clients.
func (r *Registry) Len() int { return len(r.clients) }

// Current returns the current client of a slot.
func (r *Registry) Current(ws, sc int) (Client, bool) {
	c := r.clients[r.current[ws][sc]]
	if c == nil {
		return Client{}, false
	}
	return *c, true
}

// Create links a new client for w into slot (ws, sc) right after the slot's
// current client and makes it current. The caller guarantees w is unknown.
func (r *Registry) Create(w platform.Window, ws, sc int) Client {
	r.lastID++
	c := &Client{ID: r.lastID, Window: w, Workspace: ws, Screen: sc}

	cur := r.clients[r.current[ws][sc]]
	if cur == nil {
		c.next, c.prev = c.ID, c.ID
	} else {
		after := r.clients[cur.next]
		c.next, c.prev = after.ID, cur.ID
		after.prev = c.ID
		cur.next = c.ID
	}
	r.clients[c.ID] = c
	r.current[ws][sc] = c.ID
	return *c
}

// Find looks w up across every occupied slot.
func (r *Registry) Find(w platform.Window) (Client, bool) {
	for ws := range r.current {
		for sc := range r.current[ws] {
			start := r.current[ws][sc]
			if start == noClient {
				continue
			}
			id := start
			for {
				c := r.clients[id]
				if c.Window == w {
					return *c, true
				}
				if id = c.next; id == start {
					break
				}
			}
		}
	}
	return Client{}, false
}

// Delete unlinks and releases a client. When the deleted client was current,
// its successor becomes current. Unknown IDs are a no-op.
func (r *Registry) Delete(id ClientID) {
	c := r.clients[id]
	if c == nil {
		return
	}
	head := &r.current[c.Workspace][c.Screen]
	if c.next == c.ID {
		*head = noClient
	} else {
		r.clients[c.next].prev = c.prev
		r.clients[c.prev].next = c.next
		if *head == c.ID {
			*head = c.next
		}
	}
	delete(r.clients, id)
}

// Advance makes the successor of the slot's current client current.
func (r *Registry) Advance(ws, sc int) (Client, bool) {
	c := r.clients[r.current[ws][sc]]
	if c == nil {
		return Client{}, false
	}
	r.current[ws][sc] = c.next
	return *r.clients[c.next], true
}

// Slot lists a slot's clients in list order, starting at the current one.
func (r *Registry) Slot(ws, sc int) []Client {
	start := r.current[ws][sc]
	if start == noClient {
		return nil
	}
	var out []Client
	for id := start; ; {
		c := r.clients[id]
		out = append(out, *c)
		if id = c.next; id == start {
			break
		}
	}
	return out
}

// Validate reports the first broken list: a slot that is not a closed
// circular list with agreeing links, or a node recording another slot.
// Every registered client must be reachable from exactly one slot.
func (r *Registry) Validate() error {
	seen := 0
	for ws := range r.current {
		for sc, start := range r.current[ws] {
			if start == noClient {
				continue
			}
			id := start
			for steps := 0; ; steps++ {
				if steps > len(r.clients) {
					return fmt.Errorf("slot (%d,%d): list does not return to its head", ws, sc)
				}
				c := r.clients[id]
				if c == nil {
					return fmt.Errorf("slot (%d,%d): dangling link to client %d", ws, sc, id)
				}
				if c.Workspace != ws || c.Screen != sc {
					return fmt.Errorf("slot (%d,%d): client %d records slot (%d,%d)", ws, sc, id, c.Workspace, c.Screen)
				}
				next := r.clients[c.next]
				if next == nil || next.prev != id {
					return fmt.Errorf("slot (%d,%d): client %d next/prev links disagree", ws, sc, id)
				}
				seen++
				if id = c.next; id == start {
					break
				}
			}
		}
	}
	if seen != len(r.clients) {
		return fmt.Errorf("%d clients linked, %d registered", seen, len(r.clients))
	}
	return nil
}
