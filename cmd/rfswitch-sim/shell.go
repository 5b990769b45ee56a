//go:build !tinygo

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/shlex"

	"rfswitch-go/board"
	"rfswitch-go/hal"
	"rfswitch-go/internal/app"
	"rfswitch-go/types"
)

// shell routes prompt input either to the instrument console or to the
// simulator controls.
type shell struct {
	app   *app.App
	board board.Board
	mem   *hal.Memory
	uart  *hal.MemUART
	out   io.Writer
}

// exec handles one input line and reports whether to keep going.
func (s *shell) exec(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}
	if input[0] != '.' {
		s.uart.Inject([]byte(input + "\n"))
		return true
	}

	args, err := shlex.Split(input[1:])
	if err != nil || len(args) == 0 {
		fmt.Fprintln(s.out, "bad command:", input)
		return true
	}
	switch strings.ToLower(args[0]) {
	case "help", "h":
		s.help()
	case "status", "s":
		s.status()
	case "lines", "l":
		s.lines()
	case "force", "f":
		s.force(args[1:])
	case "quit", "exit", "q":
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: .%s (type '.help' for commands)\n", args[0])
	}
	return true
}

func (s *shell) help() {
	fmt.Fprintln(s.out, `Anything not starting with '.' is sent to the SCPI console, e.g.
  ROUT:CONN "AB"        ROUT:CONN?        ROUT:ATT? "AB",2.4e9
Simulator commands:
  .status               readback snapshot
  .lines                control line levels per switch
  .force <sw|line> ...  set a line behind the driver's back:
                          .force A.V3 0   or   .force PA6 1
  .quit`)
}

func (s *shell) status() {
	out, err := json.MarshalIndent(s.app.Status(time.Now()), "", "  ")
	if err != nil {
		fmt.Fprintln(s.out, "status:", err)
		return
	}
	fmt.Fprintln(s.out, string(out))
}

func (s *shell) lines() {
	for i, sw := range s.board.Switches {
		fmt.Fprintf(s.out, "%s %-6s", types.Endpoint(i), sw.Name)
		for _, id := range [3]hal.LineID{sw.V1, sw.V2, sw.V3} {
			lvl, _ := s.mem.Level(id)
			fmt.Fprintf(s.out, "  %s=%d", id, b2i(lvl))
		}
		fmt.Fprintln(s.out)
	}
}

func (s *shell) force(args []string) {
	if len(args) != 2 || (args[1] != "0" && args[1] != "1") {
		fmt.Fprintln(s.out, "usage: .force <line> <0|1>")
		return
	}
	id, ok := s.resolve(args[0])
	if !ok {
		fmt.Fprintln(s.out, "unknown line:", args[0])
		return
	}
	s.mem.Force(id, args[1] == "1")
	fmt.Fprintf(s.out, "%s=%s\n", id, args[1])
}

// resolve accepts a board line id or <endpoint>.V<n>.
func (s *shell) resolve(name string) (hal.LineID, bool) {
	if len(name) == 4 && name[1] == '.' && (name[2] == 'V' || name[2] == 'v') {
		e, err := types.ParseEndpoint(name[0])
		if err == nil {
			sw := s.board.Switches[e]
			switch name[3] {
			case '1':
				return sw.V1, true
			case '2':
				return sw.V2, true
			case '3':
				return sw.V3, true
			}
		}
	}
	for _, id := range s.board.Lines() {
		if strings.EqualFold(string(id), name) {
			return id, true
		}
	}
	return "", false
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
