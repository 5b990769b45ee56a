//go:build linux && !tinygo

// Command rfswitchd runs the switch on a Linux host: control lines on GPIOs
// through periph.io, the SCPI console on a serial port.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jacobsa/go-serial/serial"
	"github.com/spf13/pflag"

	"rfswitch-go/board"
	"rfswitch-go/hal"
	"rfswitch-go/internal/app"
	"rfswitch-go/services/console"
	"rfswitch-go/types"
)

var (
	boardFlag  = pflag.StringP("board", "b", "", "Board: built-in name ("+strings.Join(board.Names(), ", ")+") or YAML file.")
	serialFlag = pflag.StringP("serial", "s", "", "Console serial device; overrides the board.")
	baudFlag   = pflag.Uint32P("baud", "r", 0, "Console baud rate; overrides the board.")
	echoFlag   = pflag.Bool("echo", false, "Echo received characters.")
	errEcho    = pflag.Bool("echo-errors", true, "Write **ERROR lines as errors occur.")
	fifoFlag   = pflag.Int("fifo", app.DefaultFifoSize, "Receive queue size in bytes.")
	logLevel   = pflag.StringP("log-level", "l", "info", "Log level: debug, info, warn, error.")
	dumpBoard  = pflag.Bool("dump-board", false, "Print the resolved board as YAML and exit.")
)

func main() {
	pflag.Parse()
	log := setupLogging(*logLevel)

	if err := run(log); err != nil {
		log.Error("exit", "err", err)
		os.Exit(1)
	}
}

func setupLogging(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func run(log *slog.Logger) error {
	if *boardFlag == "" {
		return fmt.Errorf("--board is required")
	}
	b, err := board.Resolve(*boardFlag)
	if err != nil {
		return err
	}
	if *serialFlag != "" {
		b.Console.Port = *serialFlag
	}
	if *baudFlag != 0 {
		b.Console.Baud = *baudFlag
	}
	if pflag.CommandLine.Changed("echo") {
		b.Console.Echo = *echoFlag
	}
	if *dumpBoard {
		out, err := board.Marshal(b)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	port, err := openSerial(b.Console)
	if err != nil {
		return fmt.Errorf("open %s: %w", b.Console.Port, err)
	}
	defer port.Close()

	gpio, err := hal.NewPeriph()
	if err != nil {
		return err
	}

	a, err := app.New(app.Config{
		Board:      b,
		Provider:   gpio,
		Source:     console.FromSerial(port),
		Out:        port,
		FifoSize:   *fifoFlag,
		EchoErrors: *errEcho,
		Log:        log,
	})
	if err != nil {
		return err
	}
	defer a.Close()
	log.Info("started", "board", b.Name, "port", b.Console.Port, "baud", b.Console.Baud)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.Run(ctx)
}

// openSerial opens the console with a short inter-character timeout so reads
// return regularly and shutdown is noticed.
func openSerial(c types.SerialConfig) (io.ReadWriteCloser, error) {
	c = c.WithDefaults()
	if c.Port == "" {
		return nil, fmt.Errorf("no console port")
	}
	return serial.Open(serial.OpenOptions{
		PortName:              c.Port,
		BaudRate:              uint(c.Baud),
		DataBits:              uint(c.DataBits),
		StopBits:              uint(c.StopBits),
		ParityMode:            parityMode(c.Parity),
		InterCharacterTimeout: 100,
		MinimumReadSize:       0,
	})
}

func parityMode(p types.Parity) serial.ParityMode {
	switch p {
	case types.ParityEven:
		return serial.PARITY_EVEN
	case types.ParityOdd:
		return serial.PARITY_ODD
	default:
		return serial.PARITY_NONE
	}
}
