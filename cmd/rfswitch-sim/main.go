//go:build !tinygo

// Command rfswitch-sim runs the switch against in-memory control lines. Lines
// typed at the prompt go to the SCPI console as if received on the serial
// port; lines starting with '.' control the simulator.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"rfswitch-go/board"
	"rfswitch-go/hal"
	"rfswitch-go/internal/app"
	"rfswitch-go/services/console"
)

var (
	boardFlag = pflag.StringP("board", "b", "nucleo-l152", "Board: built-in name ("+strings.Join(board.Names(), ", ")+") or YAML file.")
	echoFlag  = pflag.Bool("echo-errors", true, "Write **ERROR lines as errors occur.")
	logLevel  = pflag.StringP("log-level", "l", "warn", "Log level: debug, info, warn, error.")
)

func main() {
	pflag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "rfswitch-sim:", err)
		os.Exit(1)
	}
}

func run() error {
	b, err := board.Resolve(*boardFlag)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "rfswitch> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	mem := hal.NewMemory(b.Lines()...)
	uart := hal.NewMemUART()
	a, err := app.New(app.Config{
		Board:      b,
		Provider:   mem,
		Source:     console.FromUART(uart, 0),
		Out:        rl.Stdout(),
		EchoErrors: *echoFlag,
		Log:        slog.New(slog.NewTextHandler(rl.Stderr(), &slog.HandlerOptions{Level: parseLevel(*logLevel)})),
	})
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	sh := &shell{app: a, board: b, mem: mem, uart: uart, out: rl.Stdout()}
	sh.help()
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			break
		}
		if !sh.exec(line) {
			break
		}
	}
	cancel()
	return <-done
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return l
}
