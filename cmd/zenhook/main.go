// zenhook wires Claude Code prompt hooks into the Aizen vNE repo.
package main

import (
	"os"

	"github.com/hakin19/zen-support/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
