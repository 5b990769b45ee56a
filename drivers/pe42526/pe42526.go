// Package pe42526 drives a PE42526 SP6T RF switch through its three CMOS
// control lines V1..V3. The common port RFC is joined to one of RF1..RF6, or
// to nothing.
//
// The driver keeps no record of the selected port. IsSelected and Selected
// read the control lines back, so a line changed outside the driver (an
// external reset, a probe) is always visible to callers.
package pe42526

import "rfswitch-go/errcode"

// Pin is a selectable switch state.
type Pin int8

const (
	RF1 Pin = iota
	RF2
	RF3
	RF4
	RF5
	RF6
	RFC // common port isolated from every RFn (OFF)

	NoPin Pin = -1 // no such connection
)

// NumStates is the number of valid Pin values (RF1..RF6 plus RFC).
const NumStates = 7

func (p Pin) Valid() bool { return p >= RF1 && p <= RFC }

func (p Pin) String() string {
	switch {
	case p == RFC:
		return "RFC"
	case p.Valid():
		return "RF" + string(rune('1'+p))
	default:
		return "NONE"
	}
}

// Code is the level of each control line for one state.
type Code struct{ V1, V2, V3 bool }

// ConnectionMap is the device truth table, indexed by Pin.
var ConnectionMap = [NumStates]Code{
	RF1: {V1: false, V2: false, V3: false},
	RF2: {V1: false, V2: false, V3: true},
	RF3: {V1: false, V2: true, V3: false},
	RF4: {V1: false, V2: true, V3: true},
	RF5: {V1: true, V2: false, V3: false},
	RF6: {V1: true, V2: false, V3: true},
	RFC: {V1: true, V2: true, V3: false},
}

// Line is one control output with readback.
type Line interface {
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
}

// Lines are the three control lines of one device.
type Lines struct{ V1, V2, V3 Line }

// Device is one PE42526 switch.
type Device struct {
	name  string
	lines Lines
}

// New wraps the control lines. It does not touch them; call Init.
func New(name string, lines Lines) *Device {
	return &Device{name: name, lines: lines}
}

func (d *Device) Name() string { return d.name }

// Init configures the control lines as outputs already at the RFC code, so
// the switch never passes through an RF state. Calling it again is harmless.
func (d *Device) Init() error {
	c := ConnectionMap[RFC]
	for _, l := range []struct {
		line  Line
		level bool
	}{{d.lines.V1, c.V1}, {d.lines.V2, c.V2}, {d.lines.V3, c.V3}} {
		if err := l.line.ConfigureOutput(l.level); err != nil {
			return &errcode.E{C: errcode.Of(err), Op: "pe42526 init " + d.name, Err: err}
		}
	}
	return nil
}

// Select drives the control lines to the code for p. The device accepts the
// three lines changing in any order, so no sequencing is needed.
func (d *Device) Select(p Pin) error {
	if !p.Valid() {
		return errcode.Wrap(errcode.InvalidPin, "pe42526 select "+d.name, p.String())
	}
	c := ConnectionMap[p]
	d.lines.V1.Set(c.V1)
	d.lines.V2.Set(c.V2)
	d.lines.V3.Set(c.V3)
	return nil
}

// Disable isolates RFC.
func (d *Device) Disable() { _ = d.Select(RFC) }

// IsSelected reports whether all three control lines currently read back the
// code for p.
func (d *Device) IsSelected(p Pin) bool {
	if !p.Valid() {
		return false
	}
	return d.readCode() == ConnectionMap[p]
}

// Selected decodes the current line levels. It returns NoPin for the one
// 3-bit code the device does not define (all lines high).
func (d *Device) Selected() Pin {
	c := d.readCode()
	for p, want := range ConnectionMap {
		if c == want {
			return Pin(p)
		}
	}
	return NoPin
}

func (d *Device) readCode() Code {
	return Code{V1: d.lines.V1.Get(), V2: d.lines.V2.Get(), V3: d.lines.V3.Get()}
}
