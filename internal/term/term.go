// Package term holds the color escapes batchrename prints with.
//
// The logger colors its level tags (INFO cyan, DEBUG blue, WARN yellow,
// ERROR red, SUCCESS green) and the banner is magenta. Redirected output,
// NO_COLOR and TERM=dumb leave every escape empty so pipes stay plain.
package term

import (
	"os"
	"strings"

	xterm "golang.org/x/term"

	"github.com/backmassage/batchrename/internal/config"
)

// Escapes, empty while color is off.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	NC      = ""
)

// palette is the on state of the escapes above, in declaration order.
var palette = [...]string{
	"\033[1;91m", "\033[1;92m", "\033[1;93m", "\033[1;94m",
	"\033[1;96m", "\033[1;95m", "\033[0m",
}

// Configure turns color on or off for the rest of the process.
// logging.NewLogger calls it once, before anything is printed.
func Configure(mode config.ColorMode) {
	on := [len(palette)]string{}
	if wantColor(mode) {
		on = palette
	}
	Red, Green, Yellow, Blue, Cyan, Magenta, NC = on[0], on[1], on[2], on[3], on[4], on[5], on[6]
}

// Enabled reports whether escapes are currently being emitted.
func Enabled() bool { return NC != "" }

func wantColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is an interactive terminal. A nil file is not.
func IsTerminal(f *os.File) bool {
	return f != nil && xterm.IsTerminal(int(f.Fd()))
}
