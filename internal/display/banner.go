package display

import (
	"fmt"
	"io"

	"github.com/backmassage/batchrename/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, ` _           _       _
| |__   __ _| |_ ___| |__  _ __ ___ _ __   __ _ _ __ ___   ___
| '_ \ / _`+"`"+` | __/ __| '_ \| '__/ _ \ '_ \ / _`+"`"+` | '_ `+"`"+` _ \ / _ \
| |_) | (_| | || (__| | | | | |  __/ | | | (_| | | | | | |  __/
|_.__/ \__,_|\__\___|_| |_|_|  \___|_| |_|\__,_|_| |_| |_|\___|
`)
	if term.NC != "" {
		fmt.Fprintln(w, term.NC)
	}
}
