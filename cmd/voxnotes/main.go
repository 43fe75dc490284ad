// voxnotes round-trips speaker notes between PowerPoint decks and
// editable text, Markdown, or Word files.
package main

import (
	"fmt"
	"os"

	"github.com/voxprep/voxnotes-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
