// Package hal abstracts the digital control lines that drive the switch
// devices. A line is written and read back by level only; providers map line
// identifiers onto real GPIOs (rp2040 machine pins, Linux GPIO via periph.io)
// or onto memory for simulation and tests.
package hal

import (
	"sync"

	"rfswitch-go/errcode"
)

// LineID names a control line, e.g. "PA12" on the reference board,
// "GPIO17" on Linux or "GP5" on rp2040.
type LineID string

// Line is one digital output whose level can be read back.
type Line interface {
	ID() LineID
	// ConfigureOutput switches the line to push-pull output at the given level.
	ConfigureOutput(initial bool) error
	Set(level bool)
	// Get returns the level the line is actually at, not the last Set.
	Get() bool
}

// Provider hands out lines. A line may be claimed by one owner at a time.
type Provider interface {
	ClaimLine(owner string, id LineID) (Line, error)
	ReleaseLine(owner string, id LineID)
}

// claims is the ownership table shared by providers.
type claims struct {
	mu     sync.Mutex
	owners map[LineID]string
}

func (c *claims) claim(owner string, id LineID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.owners == nil {
		c.owners = map[LineID]string{}
	}
	if cur, taken := c.owners[id]; taken && cur != owner {
		return errcode.Wrap(errcode.LineInUse, "claim "+string(id), "owned by "+cur)
	}
	c.owners[id] = owner
	return nil
}

func (c *claims) release(owner string, id LineID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, ok := c.owners[id]; ok && cur == owner {
		delete(c.owners, id)
	}
}
