package output

import (
	"fmt"

	"github.com/mj1618/zwm/internal/model"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// KeysResult is the top-level output of the `keys` command.
type KeysResult struct {
	Modifier string     `yaml:"modifier" json:"modifier"`
	Bindings []KeyEntry `yaml:"bindings" json:"bindings"`
}

// KeyEntry is one resolved binding.
type KeyEntry struct {
	Chord  string       `yaml:"chord"         json:"chord"`
	Action model.Action `yaml:"action"        json:"action"`
	Arg    string       `yaml:"arg,omitempty" json:"arg,omitempty"`
}

// NewKeysResult resolves every binding against the modifier.
func NewKeysResult(modifier string, bindings []model.Binding) KeysResult {
	entries := make([]KeyEntry, len(bindings))
	for i, b := range bindings {
		entries[i] = KeyEntry{Chord: b.Chord(modifier), Action: b.Action, Arg: b.Arg}
	}
	return KeysResult{Modifier: modifier, Bindings: entries}
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}
