// Package status drives the front-panel status LED from the main loop.
//
//	idle       slow blink
//	connected  steady on
//	alert      fast blink, for a while after a command error or lost input
package status

import (
	"sync/atomic"
	"time"

	"rfswitch-go/hal"
)

// Router is the part of the routing registry the indicator watches.
type Router interface {
	IsIdle() bool
}

type Mode uint8

const (
	ModeIdle Mode = iota
	ModeConnected
	ModeAlert
)

func (m Mode) String() string {
	switch m {
	case ModeConnected:
		return "connected"
	case ModeAlert:
		return "alert"
	default:
		return "idle"
	}
}

type Config struct {
	Slow      time.Duration // idle toggle period; default 1s
	Fast      time.Duration // alert toggle period; default 100ms
	Hold      time.Duration // alert duration; default 2s
	Poll      time.Duration // router readback period; default 100ms
	ActiveLow bool
}

func (c Config) withDefaults() Config {
	if c.Slow <= 0 {
		c.Slow = time.Second
	}
	if c.Fast <= 0 {
		c.Fast = 100 * time.Millisecond
	}
	if c.Hold <= 0 {
		c.Hold = 2 * time.Second
	}
	if c.Poll <= 0 {
		c.Poll = 100 * time.Millisecond
	}
	return c
}

// Indicator is a console.Housekeeper. Tick must be called from the main
// loop; Alert may be called from anywhere.
type Indicator struct {
	led   hal.Line
	r     Router
	drops func() uint32
	cfg   Config

	pending atomic.Bool

	mode      Mode
	on        bool
	idle      bool
	nextPoll  time.Time
	nextFlip  time.Time
	alertTill time.Time
	lastDrops uint32
}

// New returns an indicator on led. drops, if not nil, is polled for lost
// input bytes.
func New(led hal.Line, r Router, drops func() uint32, cfg Config) *Indicator {
	in := &Indicator{led: led, r: r, drops: drops, cfg: cfg.withDefaults(), idle: true}
	if drops != nil {
		in.lastDrops = drops()
	}
	return in
}

// Init configures the LED output, off.
func (in *Indicator) Init() error {
	in.on = false
	return in.led.ConfigureOutput(in.level(false))
}

// Alert starts (or extends) the fast blink.
func (in *Indicator) Alert() { in.pending.Store(true) }

// Mode reports the mode chosen at the last Tick.
func (in *Indicator) Mode() Mode { return in.mode }

func (in *Indicator) Tick(now time.Time) {
	if in.pending.Swap(false) {
		in.alertTill = now.Add(in.cfg.Hold)
	}
	if in.drops != nil {
		if d := in.drops(); d != in.lastDrops {
			in.lastDrops = d
			in.alertTill = now.Add(in.cfg.Hold)
		}
	}
	if !now.Before(in.nextPoll) {
		in.idle = in.r.IsIdle()
		in.nextPoll = now.Add(in.cfg.Poll)
	}

	mode := ModeConnected
	switch {
	case now.Before(in.alertTill):
		mode = ModeAlert
	case in.idle:
		mode = ModeIdle
	}
	if mode != in.mode {
		in.mode = mode
		in.nextFlip = now
	}

	switch in.mode {
	case ModeConnected:
		in.set(true)
	case ModeIdle:
		in.blink(now, in.cfg.Slow)
	case ModeAlert:
		in.blink(now, in.cfg.Fast)
	}
}

func (in *Indicator) blink(now time.Time, period time.Duration) {
	if now.Before(in.nextFlip) {
		return
	}
	in.set(!in.on)
	in.nextFlip = now.Add(period)
}

func (in *Indicator) set(on bool) {
	if on == in.on {
		return
	}
	in.on = on
	in.led.Set(in.level(on))
}

func (in *Indicator) level(on bool) bool { return on != in.cfg.ActiveLow }
