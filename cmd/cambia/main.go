// Command cambia parses CD-ripper log files from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/cambia-project/cambia-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
