//go:build rp2040 || rp2350

// Command rfswitch-fw is the switch firmware for a Pico carrier board. The
// SCPI console is on uart0 (GP0 TX, GP1 RX).
package main

import (
	"context"
	"machine"
	"time"

	"github.com/jangala-dev/tinygo-uartx/uartx"

	"rfswitch-go/board"
	"rfswitch-go/hal"
	"rfswitch-go/internal/app"
	"rfswitch-go/types"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(1500 * time.Millisecond)
	println("[fw] boot")

	b := board.Pico()
	u, tx, rx := consoleUART(b.Console.Port)
	c := b.Console
	if err := u.Configure(uartx.UARTConfig{BaudRate: c.Baud, TX: tx, RX: rx}); err != nil {
		fatal("uart configure", err)
	}
	if err := u.SetFormat(c.DataBits, c.StopBits, parity(c.Parity)); err != nil {
		fatal("uart format", err)
	}

	a, err := app.New(app.Config{
		Board:      b,
		Provider:   hal.NewRP2(),
		Source:     u,
		Out:        u,
		EchoErrors: true,
		Log:        printLogger{},
	})
	if err != nil {
		fatal("init", err)
	}
	if err := a.Run(context.Background()); err != nil {
		fatal("console", err)
	}
}

func consoleUART(port string) (*uartx.UART, machine.Pin, machine.Pin) {
	if port == "uart1" {
		return uartx.UART1, machine.GPIO4, machine.GPIO5
	}
	return uartx.UART0, machine.GPIO0, machine.GPIO1
}

func parity(p types.Parity) uartx.UARTParity {
	switch p {
	case types.ParityEven:
		return uartx.ParityEven
	case types.ParityOdd:
		return uartx.ParityOdd
	default:
		return uartx.ParityNone
	}
}

func fatal(what string, err error) {
	for {
		println("[fw] FAIL:", what, err.Error())
		time.Sleep(5 * time.Second)
	}
}

// printLogger writes key=value logs with the builtin println (no fmt).
type printLogger struct{}

func (printLogger) Info(msg string, args ...any) { printLog("[fw] ", msg, args) }
func (printLogger) Warn(msg string, args ...any) { printLog("[fw] WARN ", msg, args) }

func printLog(prefix, msg string, args []any) {
	print(prefix, msg)
	for i := 0; i+1 < len(args); i += 2 {
		k, _ := args[i].(string)
		print(" ", k, "=")
		switch v := args[i+1].(type) {
		case string:
			print(v)
		case int:
			print(v)
		case uint32:
			print(v)
		case int64:
			print(v)
		case bool:
			print(v)
		default:
			print("?")
		}
	}
	println()
}
