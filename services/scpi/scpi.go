// Package scpi is a small SCPI-style command interpreter for the switch. It
// parses one line at a time, runs the matching handler against the routing
// and attenuation back ends, writes replies and keeps the standard error
// queue and status registers.
package scpi

import (
	"bytes"
	"io"
	"strconv"

	"rfswitch-go/attenuation"
	"rfswitch-go/routing"
	"rfswitch-go/types"
)

// Router is the routing back end. *routing.Registry implements it.
type Router interface {
	Connect(x, y types.Endpoint) error
	Disconnect(x, y types.Endpoint) error
	DisconnectAll()
	Query(filter *types.Path) ([]types.Path, error)
	IsIdle() bool
	States() [types.NumEndpoints]types.SwitchState
	Matrix() *routing.Matrix
}

// Loss is the attenuation back end. *attenuation.Lookup implements it.
type Loss interface {
	Grid() attenuation.Grid
	TableFor(x, y types.Endpoint) ([]uint16, bool)
	QueryPoint(x, y types.Endpoint, f int64) (attenuation.Bracket, error)
}

var (
	_ Router = (*routing.Registry)(nil)
	_ Loss   = (*attenuation.Lookup)(nil)
)

// Version is reported by SYSTem:VERSion?.
const Version = "1999.0"

type Config struct {
	Router   Router
	Loss     Loss
	Identity types.Identity

	// EchoErrors writes `**ERROR: <n>, "<text>"` as each error is queued.
	EchoErrors bool
	// OnError is called for every queued error.
	OnError func(e Error)
}

// Status byte and event status register bits.
const (
	esrOPC = 1 << 0
	esrQYE = 1 << 2
	esrDDE = 1 << 3
	esrEXE = 1 << 4
	esrCME = 1 << 5

	stbEAV = 1 << 2
	stbQES = 1 << 3
	stbESB = 1 << 5
	stbMSS = 1 << 6
)

// Interpreter executes command lines. Not safe for concurrent use; it belongs
// to the main loop.
type Interpreter struct {
	cfg  Config
	out  io.Writer
	cmds []entry

	errs     errorQueue
	ese, esr uint8
	sre      uint8
	quesEn   uint16
	quesEv   uint16

	reply bytes.Buffer
	n     int // replies in the current line
}

type handler func(it *Interpreter, c command) error

type entry struct {
	pat pattern
	fn  handler
}

// New returns an Interpreter writing replies to out.
func New(out io.Writer, cfg Config) *Interpreter {
	it := &Interpreter{cfg: cfg, out: out}
	for _, d := range commandTable {
		it.cmds = append(it.cmds, entry{pat: compile(d.pattern), fn: d.fn})
	}
	return it
}

// Dispatch runs every ';'-separated command on line and writes the combined
// reply, if any, terminated by CRLF.
func (it *Interpreter) Dispatch(line []byte) {
	it.reply.Reset()
	it.n = 0

	var prefix []string
	for _, unit := range splitOutside(string(line), ';') {
		c, ok := parseCommand(unit, prefix)
		if !ok {
			continue
		}
		if len(c.nodes) > 1 && c.nodes[0] != "" && c.nodes[0][0] != '*' {
			prefix = c.nodes[:len(c.nodes)-1]
		}
		if err := it.exec(c); err != nil {
			it.PushError(fromErr(err))
		}
	}
	if it.n > 0 {
		it.reply.WriteString("\r\n")
		_, _ = it.out.Write(it.reply.Bytes())
	}
}

func (it *Interpreter) exec(c command) error {
	for _, e := range it.cmds {
		if e.pat.match(c.nodes, c.query) {
			return e.fn(it, c)
		}
	}
	return Error{Code: ErrUndefinedHeader}
}

// PushError queues e, sets the matching event status bit and reports it.
func (it *Interpreter) PushError(e Error) {
	it.errs.push(e)
	switch {
	case e.Code <= -100 && e.Code > -200:
		it.esr |= esrCME
	case e.Code <= -200 && e.Code > -300:
		it.esr |= esrEXE
	case e.Code <= -300 && e.Code > -400:
		it.esr |= esrDDE
	case e.Code <= -400 && e.Code > -500:
		it.esr |= esrQYE
	}
	if it.cfg.EchoErrors {
		_, _ = io.WriteString(it.out, "**ERROR: "+strconv.Itoa(e.Code)+`, "`+ErrorText(e.Code)+"\"\r\n")
	}
	if it.cfg.OnError != nil {
		it.cfg.OnError(e)
	}
}

// ErrorCount reports the number of queued errors.
func (it *Interpreter) ErrorCount() int { return it.errs.len() }

// Reset is *RST: every path is opened.
func (it *Interpreter) Reset() {
	if it.cfg.Router != nil {
		it.cfg.Router.DisconnectAll()
	}
}

func (it *Interpreter) stb() uint8 {
	var s uint8
	if it.errs.len() > 0 {
		s |= stbEAV
	}
	if it.quesEv&it.quesEn != 0 {
		s |= stbQES
	}
	if it.esr&it.ese != 0 {
		s |= stbESB
	}
	if s&it.sre != 0 {
		s |= stbMSS
	}
	return s
}

// Reply helpers. Results of several queries on one line are separated by ';'.

func (it *Interpreter) next() {
	if it.n > 0 {
		it.reply.WriteByte(';')
	}
	it.n++
}

func (it *Interpreter) replyInt(v int64) {
	it.next()
	it.reply.WriteString(strconv.FormatInt(v, 10))
}

func (it *Interpreter) replyInts(vs ...int64) {
	it.next()
	for i, v := range vs {
		if i > 0 {
			it.reply.WriteByte(',')
		}
		it.reply.WriteString(strconv.FormatInt(v, 10))
	}
}

func (it *Interpreter) replyText(s string) {
	it.next()
	it.reply.WriteString(s)
}

// replyString writes a SCPI string response, doubling embedded quotes.
func (it *Interpreter) replyString(s string) {
	it.next()
	it.reply.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			it.reply.WriteByte('"')
		}
		it.reply.WriteByte(s[i])
	}
	it.reply.WriteByte('"')
}
