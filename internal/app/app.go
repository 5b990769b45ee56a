// Package app assembles one switch instrument from a board description and a
// line provider, and runs it.
package app

import (
	"context"
	"io"
	"time"

	"rfswitch-go/attenuation"
	"rfswitch-go/board"
	"rfswitch-go/drivers/pe42526"
	"rfswitch-go/errcode"
	"rfswitch-go/hal"
	"rfswitch-go/routing"
	"rfswitch-go/services/console"
	"rfswitch-go/services/scpi"
	"rfswitch-go/services/status"
	"rfswitch-go/types"
	"rfswitch-go/x/bytefifo"
)

// Logger is satisfied by *slog.Logger. The firmware passes a println logger.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any) {}
func (nopLogger) Warn(string, ...any) {}

const DefaultFifoSize = 512

type Config struct {
	Board    board.Board
	Provider hal.Provider

	Source console.Source // console receive side
	Out    io.Writer      // console transmit side: replies, echo, banner

	FifoSize   int           // bytes; default DefaultFifoSize
	Tick       time.Duration // housekeeping period; 0 uses the console default
	EchoErrors bool          // write **ERROR lines as errors are queued
	Log        Logger
}

// App owns every component of a running instrument. All of them except the
// pump run on the goroutine that calls Run.
type App struct {
	cfg Config
	log Logger

	reg  *routing.Registry
	loss *attenuation.Lookup
	fifo *bytefifo.Fifo
	pump *console.Pump
	loop *console.Loop
	it   *scpi.Interpreter
	led  *status.Indicator

	claimed []claim
}

type claim struct {
	owner string
	id    hal.LineID
}

// New claims every line of cfg.Board, initialises the switches (all paths
// open) and wires the console. Lines are released again on error.
func New(cfg Config) (_ *App, err error) {
	if cfg.Provider == nil || cfg.Source == nil || cfg.Out == nil {
		return nil, errcode.Wrap(errcode.InvalidConfig, "app", "provider, source and out are required")
	}
	if err := cfg.Board.Validate(); err != nil {
		return nil, err
	}
	if cfg.FifoSize <= 0 {
		cfg.FifoSize = DefaultFifoSize
	}
	a := &App{cfg: cfg, log: cfg.Log}
	if a.log == nil {
		a.log = nopLogger{}
	}
	defer func() {
		if err != nil {
			a.release()
		}
	}()

	var sw [types.NumEndpoints]routing.Switch
	for i, s := range cfg.Board.Switches {
		var ls [3]hal.Line
		for j, id := range [3]hal.LineID{s.V1, s.V2, s.V3} {
			if ls[j], err = a.claimLine(s.Name, id); err != nil {
				return nil, err
			}
		}
		sw[i] = pe42526.New(s.Name, pe42526.Lines{V1: ls[0], V2: ls[1], V3: ls[2]})
	}
	a.reg = routing.NewRegistry(routing.NewMatrix(), sw)
	if err = a.reg.Init(); err != nil {
		return nil, err
	}
	a.loss = attenuation.New()
	a.fifo = bytefifo.New(cfg.FifoSize)

	var hk []console.Housekeeper
	if cfg.Board.StatusLED != "" {
		led, err := a.claimLine("status", cfg.Board.StatusLED)
		if err != nil {
			return nil, err
		}
		a.led = status.New(led, a.reg, a.fifo.Drops, status.Config{})
		if err := a.led.Init(); err != nil {
			return nil, err
		}
		hk = append(hk, a.led)
	}

	a.it = scpi.New(cfg.Out, scpi.Config{
		Router:     a.reg,
		Loss:       a.loss,
		Identity:   cfg.Board.Identity,
		EchoErrors: cfg.EchoErrors,
		OnError:    a.onError,
	})
	a.loop = console.NewLoop(a.fifo, cfg.Out, a.it, console.LoopConfig{
		Echo: cfg.Board.Console.Echo,
		Tick: cfg.Tick,
	}, hk...)
	a.pump = console.NewPump(cfg.Source, a.fifo)
	return a, nil
}

func (a *App) claimLine(owner string, id hal.LineID) (hal.Line, error) {
	l, err := a.cfg.Provider.ClaimLine(owner, id)
	if err != nil {
		return nil, err
	}
	a.claimed = append(a.claimed, claim{owner, id})
	return l, nil
}

func (a *App) release() {
	for _, c := range a.claimed {
		a.cfg.Provider.ReleaseLine(c.owner, c.id)
	}
	a.claimed = nil
}

func (a *App) onError(e scpi.Error) {
	if a.led != nil {
		a.led.Alert()
	}
	a.log.Warn("command error", "code", e.Code, "text", scpi.ErrorText(e.Code), "info", e.Info)
}

// BannerPrefix starts the line written when the console comes up.
const BannerPrefix = "RF Switch 7 Channels (A-G) "

// Banner is the line written when the console comes up.
func (a *App) Banner() string {
	id := a.cfg.Board.Identity
	return BannerPrefix + id.Model + " version " + id.Version
}

// Run writes the banner and serves the console until ctx ends. It returns
// the pump's error if the console source fails.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	_, _ = io.WriteString(a.cfg.Out, a.Banner()+"\r\n")
	a.log.Info("console ready", "board", a.cfg.Board.Name, "fifo", a.fifo.Cap())

	pumpErr := make(chan error, 1)
	go func() {
		err := a.pump.Run(ctx)
		cancel()
		pumpErr <- err
	}()

	_ = a.loop.Run(ctx)
	cancel()
	err := <-pumpErr
	st := a.loop.Stats()
	a.log.Info("console stopped", "lines", st.Lines, "overlong", st.Overlong, "rx_dropped", st.RxDropped)
	return err
}

// Close opens every path and releases the lines. Call it after Run returns.
func (a *App) Close() {
	a.reg.DisconnectAll()
	a.release()
}

// Status is a readback snapshot. It only reads lines, so it may be called
// while Run is serving if the provider's lines allow concurrent reads.
func (a *App) Status(now time.Time) types.RouterStatus {
	st := types.RouterStatus{
		Idle:      a.reg.IsIdle(),
		Connected: []string{},
		RxDrops:   a.fifo.Drops(),
		TS:        now.UnixMilli(),
	}
	live, _ := a.reg.Query(nil)
	for _, p := range live {
		st.Connected = append(st.Connected, p.String())
	}
	states := a.reg.States()
	st.Switches = states[:]
	return st
}

// Registry exposes the router, e.g. for a front panel.
func (a *App) Registry() *routing.Registry { return a.reg }

// Stats returns the console counters.
func (a *App) Stats() console.Stats { return a.loop.Stats() }
