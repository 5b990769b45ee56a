package board

import (
	"sort"

	"rfswitch-go/errcode"
	"rfswitch-go/hal"
	"rfswitch-go/types"
)

func sw(name, v1, v2, v3 string) SwitchLines {
	return SwitchLines{Name: name, V1: hal.LineID(v1), V2: hal.LineID(v2), V3: hal.LineID(v3)}
}

// NucleoL152 is the reference board: seven PE42526 (U1..U7) on the GPIO
// ports of an STM32L152 Nucleo.
func NucleoL152() Board {
	b := Board{
		Name: "nucleo-l152",
		Switches: [types.NumEndpoints]SwitchLines{
			sw("SMA_A", "PA12", "PA11", "PA6"),
			sw("SMA_B", "PC10", "PC11", "PD2"),
			sw("SMA_C", "PC5", "PB9", "PC6"),
			sw("SMA_D", "PB8", "PC8", "PC9"),
			sw("SMA_E", "PA0", "PB7", "PA15"),
			sw("SMA_F", "PB2", "PA9", "PC7"),
			sw("SMA_G", "PB6", "PB12", "PA7"),
		},
		StatusLED: "PA5",
		Console:   types.SerialConfig{Port: "USART2"},
	}
	b.fillDefaults()
	return b
}

// Pico wires the same switches to consecutive rp2040 GPIOs.
func Pico() Board {
	b := Board{
		Name: "pico",
		Switches: [types.NumEndpoints]SwitchLines{
			sw("SMA_A", "GP2", "GP3", "GP4"),
			sw("SMA_B", "GP5", "GP6", "GP7"),
			sw("SMA_C", "GP8", "GP9", "GP10"),
			sw("SMA_D", "GP11", "GP12", "GP13"),
			sw("SMA_E", "GP14", "GP15", "GP16"),
			sw("SMA_F", "GP17", "GP18", "GP19"),
			sw("SMA_G", "GP20", "GP21", "GP22"),
		},
		StatusLED: "GP25",
		Console:   types.SerialConfig{Port: "uart0"},
	}
	b.fillDefaults()
	return b
}

var builtins = map[string]func() Board{
	"nucleo-l152": NucleoL152,
	"pico":        Pico,
}

// Builtin returns a copy of a compiled-in board.
func Builtin(name string) (Board, error) {
	f, ok := builtins[name]
	if !ok {
		return Board{}, errcode.Wrap(errcode.InvalidConfig, "board", "unknown board "+name)
	}
	return f(), nil
}

// Names lists the compiled-in boards.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for n := range builtins {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
