package model

import (
	"fmt"
	"strings"
)

// Layout is a point-in-time dump of every occupied slot.
type Layout struct {
	Workspace  int               `yaml:"workspace"         json:"workspace"`
	Screen     int               `yaml:"screen"            json:"screen"`
	Current    uint32            `yaml:"current,omitempty" json:"current,omitempty"`
	Workspaces []WorkspaceLayout `yaml:"workspaces"        json:"workspaces"`
}

// WorkspaceLayout lists the occupied screens of one workspace.
type WorkspaceLayout struct {
	Index   int            `yaml:"index"   json:"index"`
	Screens []ScreenLayout `yaml:"screens" json:"screens"`
}

// ScreenLayout lists the windows of one slot, starting at its current client.
type ScreenLayout struct {
	Index   int      `yaml:"index"   json:"index"`
	Windows []uint32 `yaml:"windows" json:"windows"`
}

// String renders the layout as an indented tree:
//
//	current: 9 1 0
//	workspace1
//	|--screen0
//	   |--9
//	   |--7
func (l Layout) String() string {
	var b strings.Builder
	if l.Current != 0 {
		fmt.Fprintf(&b, "current: %d %d %d\n", l.Current, l.Workspace, l.Screen)
	}
	for _, ws := range l.Workspaces {
		fmt.Fprintf(&b, "workspace%d\n", ws.Index)
		for _, sc := range ws.Screens {
			fmt.Fprintf(&b, "|--screen%d\n", sc.Index)
			for _, w := range sc.Windows {
				fmt.Fprintf(&b, "   |--%d\n", w)
			}
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
