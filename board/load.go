//go:build !tinygo

package board

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"rfswitch-go/errcode"
	"rfswitch-go/hal"
	"rfswitch-go/types"
)

// file is the on-disk form. Switches are keyed by endpoint letter so a file
// based on a built-in board only lists what it changes.
type file struct {
	Base      string                 `yaml:"base,omitempty"`
	Name      string                 `yaml:"name"`
	Identity  *types.Identity        `yaml:"identity"`
	Switches  map[string]SwitchLines `yaml:"switches"`
	StatusLED *hal.LineID            `yaml:"status_led"`
	Console   *types.SerialConfig    `yaml:"console"`
}

// Load reads a board file. See Parse.
func Load(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Board{}, err
	}
	return Parse(data)
}

// Parse decodes a YAML board description. With "base: <name>" the file
// starts from that built-in board and overrides only the fields it sets;
// switch entries are merged field by field. The result is validated.
func Parse(data []byte) (Board, error) {
	var head struct {
		Base string `yaml:"base"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Board{}, errcode.Wrap(errcode.InvalidConfig, "board", err.Error())
	}

	var b Board
	if head.Base != "" {
		var err error
		if b, err = Builtin(head.Base); err != nil {
			return Board{}, err
		}
	}

	// Decoding through pointers into b keeps every field the file omits.
	f := file{Identity: &b.Identity, StatusLED: &b.StatusLED, Console: &b.Console}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Board{}, errcode.Wrap(errcode.InvalidConfig, "board", err.Error())
	}
	if f.Name != "" {
		b.Name = f.Name
	}
	for key, s := range f.Switches {
		if len(key) != 1 {
			return Board{}, errcode.Wrap(errcode.InvalidConfig, "board", "bad switch key "+key)
		}
		e, err := types.ParseEndpoint(key[0])
		if err != nil {
			return Board{}, errcode.Wrap(errcode.InvalidConfig, "board", "bad switch key "+key)
		}
		cur := &b.Switches[e]
		if s.Name != "" {
			cur.Name = s.Name
		}
		if s.V1 != "" {
			cur.V1 = s.V1
		}
		if s.V2 != "" {
			cur.V2 = s.V2
		}
		if s.V3 != "" {
			cur.V3 = s.V3
		}
	}
	b.fillDefaults()
	if b.Name == "" {
		b.Name = "custom"
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Resolve returns the built-in board called nameOrPath, or loads it as a
// file when no such board exists.
func Resolve(nameOrPath string) (Board, error) {
	if b, err := Builtin(nameOrPath); err == nil {
		return b, nil
	}
	if !strings.ContainsAny(nameOrPath, "/.") {
		return Board{}, errcode.Wrap(errcode.InvalidConfig, "board",
			"unknown board "+nameOrPath+" (built-in: "+strings.Join(Names(), ", ")+")")
	}
	return Load(nameOrPath)
}

// Marshal renders b in the file form, switches keyed by letter.
func Marshal(b Board) ([]byte, error) {
	f := file{
		Name:      b.Name,
		Identity:  &b.Identity,
		Switches:  map[string]SwitchLines{},
		StatusLED: &b.StatusLED,
		Console:   &b.Console,
	}
	for i, s := range b.Switches {
		f.Switches[types.Endpoint(i).String()] = s
	}
	return yaml.Marshal(f)
}
