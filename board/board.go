// Package board describes how the seven switch devices are wired: the three
// control lines of each device, the status LED and the console port.
package board

import (
	"rfswitch-go/errcode"
	"rfswitch-go/hal"
	"rfswitch-go/types"
)

// SwitchLines are the control lines of one PE42526.
type SwitchLines struct {
	Name string     `yaml:"name" json:"name"`
	V1   hal.LineID `yaml:"v1" json:"v1"`
	V2   hal.LineID `yaml:"v2" json:"v2"`
	V3   hal.LineID `yaml:"v3" json:"v3"`
}

// Board is a complete wiring description. Switches is indexed by endpoint.
type Board struct {
	Name      string                          `yaml:"name" json:"name"`
	Identity  types.Identity                  `yaml:"identity" json:"identity"`
	Switches  [types.NumEndpoints]SwitchLines `yaml:"-" json:"switches"`
	StatusLED hal.LineID                      `yaml:"status_led,omitempty" json:"status_led,omitempty"`
	Console   types.SerialConfig              `yaml:"console" json:"console"`
}

// DefaultIdentity is reported by *IDN? unless a board overrides it.
var DefaultIdentity = types.Identity{
	Manufacturer: "RFSWITCH",
	Model:        "RFSW7-PE42526",
	Serial:       "0",
	Version:      "1.0",
}

// Validate checks that every control line is named and that no line is
// used twice.
func (b *Board) Validate() error {
	op := "board " + b.Name
	used := map[hal.LineID]string{}
	take := func(id hal.LineID, what string) error {
		if id == "" {
			return errcode.Wrap(errcode.InvalidConfig, op, what+": no line")
		}
		if prev, dup := used[id]; dup {
			return errcode.Wrap(errcode.InvalidConfig, op, what+": line "+string(id)+" already used by "+prev)
		}
		used[id] = what
		return nil
	}
	for i, s := range b.Switches {
		ep := types.Endpoint(i).String()
		for _, l := range []struct {
			id hal.LineID
			v  string
		}{{s.V1, "V1"}, {s.V2, "V2"}, {s.V3, "V3"}} {
			if err := take(l.id, ep+"."+l.v); err != nil {
				return err
			}
		}
	}
	if b.StatusLED != "" {
		if err := take(b.StatusLED, "status_led"); err != nil {
			return err
		}
	}
	return nil
}

// Lines lists every control line in a fixed order (A.V1 .. G.V3, LED).
func (b *Board) Lines() []hal.LineID {
	out := make([]hal.LineID, 0, 3*types.NumEndpoints+1)
	for _, s := range b.Switches {
		out = append(out, s.V1, s.V2, s.V3)
	}
	if b.StatusLED != "" {
		out = append(out, b.StatusLED)
	}
	return out
}

func (b *Board) fillDefaults() {
	for i := range b.Switches {
		if b.Switches[i].Name == "" {
			b.Switches[i].Name = "SMA_" + types.Endpoint(i).String()
		}
	}
	if b.Identity == (types.Identity{}) {
		b.Identity = DefaultIdentity
	}
	b.Console = b.Console.WithDefaults()
}
