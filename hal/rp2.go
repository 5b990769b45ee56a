//go:build rp2040 || rp2350

package hal

import (
	"machine"

	"rfswitch-go/errcode"
	"rfswitch-go/x/mathx"
)

// RP2 provides rp2040 GPIOs. Line ids are "GP0".."GP29".
type RP2 struct {
	claims
	lines map[int]*rp2Line
}

var _ Provider = (*RP2)(nil)

const rp2MaxGPIO = 29

func NewRP2() *RP2 { return &RP2{lines: map[int]*rp2Line{}} }

func (r *RP2) ClaimLine(owner string, id LineID) (Line, error) {
	n, ok := parseGP(id)
	if !ok || !mathx.Between(n, 0, rp2MaxGPIO) {
		return nil, errcode.Wrap(errcode.UnknownLine, "claim", string(id))
	}
	if err := r.claim(owner, id); err != nil {
		return nil, err
	}
	l, ok := r.lines[n]
	if !ok {
		l = &rp2Line{id: id, p: machine.Pin(n)}
		r.lines[n] = l
	}
	return l, nil
}

func (r *RP2) ReleaseLine(owner string, id LineID) {
	if n, ok := parseGP(id); ok {
		if l, ok := r.lines[n]; ok {
			l.p.Configure(machine.PinConfig{Mode: machine.PinInput})
		}
	}
	r.release(owner, id)
}

func parseGP(id LineID) (int, bool) {
	s := string(id)
	if len(s) < 3 || s[:2] != "GP" {
		return 0, false
	}
	n := 0
	for i := 2; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

type rp2Line struct {
	id LineID
	p  machine.Pin
}

func (l *rp2Line) ID() LineID { return l.id }

func (l *rp2Line) ConfigureOutput(initial bool) error {
	l.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	l.p.Set(initial)
	return nil
}

func (l *rp2Line) Set(level bool) { l.p.Set(level) }

// Get reads the pad input, which reflects the driven level on rp2040.
func (l *rp2Line) Get() bool { return l.p.Get() }
