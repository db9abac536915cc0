package display

import (
	"fmt"
	"os"

	"github.com/backmassage/bookmux/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____              _    __  __
| __ )  ___   ___ | | _|  \/  |_   ___  __
|  _ \ / _ \ / _ \| |/ / |\/| | | | \ \/ /
| |_) | (_) | (_) |   <| |  | | |_| |>  <
|____/ \___/ \___/|_|\_\_|  |_|\__,_/_/\_\
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
