package model

import (
	"fmt"
	"strings"
)

// Action names a bound key action.
type Action string

const (
	ActionSpawn         Action = "spawn"
	ActionClose         Action = "close"
	ActionQuit          Action = "quit"
	ActionWorkspace     Action = "workspace"
	ActionWorkspaceBack Action = "workspace-back"
	ActionNextClient    Action = "next-client"
	ActionNextScreen    Action = "next-screen"
)

// Actions lists every known action in table order.
var Actions = []Action{
	ActionSpawn,
	ActionClose,
	ActionQuit,
	ActionWorkspace,
	ActionWorkspaceBack,
	ActionNextClient,
	ActionNextScreen,
}

// ParseAction converts a config string to an Action.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Actions {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action: %q", s)
}

// Binding maps a key, relative to the global modifier, to an action.
type Binding struct {
	Key    string `yaml:"key"           json:"key"`
	Action Action `yaml:"action"        json:"action"`
	Arg    string `yaml:"arg,omitempty" json:"arg,omitempty"`
}

// Chord returns the full key chord string, e.g. "Mod1-Shift-c".
func (b Binding) Chord(modifier string) string {
	if modifier == "" {
		return b.Key
	}
	return modifier + "-" + b.Key
}
