// Command s2cell inspects S2 cells, tokens and coverings.
package main

import (
	"os"

	"github.com/akhenakh/s2cells/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
