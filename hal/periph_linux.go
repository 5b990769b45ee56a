//go:build linux && !(rp2040 || rp2350)

package hal

import (
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"rfswitch-go/errcode"
)

// Periph provides Linux GPIO lines through periph.io. Line ids are the names
// known to gpioreg, e.g. "GPIO17" or a board alias.
type Periph struct {
	claims
}

var _ Provider = (*Periph)(nil)

var hostInit struct {
	once sync.Once
	err  error
}

// NewPeriph loads the periph.io host drivers (once per process).
func NewPeriph() (*Periph, error) {
	hostInit.once.Do(func() {
		_, hostInit.err = host.Init()
	})
	if hostInit.err != nil {
		return nil, &errcode.E{C: errcode.Unsupported, Op: "periph host init", Err: hostInit.err}
	}
	return &Periph{}, nil
}

func (p *Periph) ClaimLine(owner string, id LineID) (Line, error) {
	pin := gpioreg.ByName(string(id))
	if pin == nil {
		return nil, errcode.Wrap(errcode.UnknownLine, "claim", string(id))
	}
	if err := p.claim(owner, id); err != nil {
		return nil, err
	}
	return &periphLine{id: id, p: pin}, nil
}

// ReleaseLine gives up ownership only. The line keeps driving its last
// level, so switches left at RFC stay at RFC after the process exits.
func (p *Periph) ReleaseLine(owner string, id LineID) { p.release(owner, id) }

type periphLine struct {
	id LineID
	p  gpio.PinIO
}

func (l *periphLine) ID() LineID { return l.id }

func (l *periphLine) ConfigureOutput(initial bool) error {
	if err := l.p.Out(gpio.Level(initial)); err != nil {
		return &errcode.E{C: errcode.Error, Op: "configure " + string(l.id), Err: err}
	}
	return nil
}

func (l *periphLine) Set(level bool) { _ = l.p.Out(gpio.Level(level)) }

func (l *periphLine) Get() bool { return l.p.Read() == gpio.High }
