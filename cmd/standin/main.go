// Command standin demonstrates the capture semantics the standin library
// packages: the same harness, handed a value double and a shared double,
// reports different payloads after an external mutation.
package main

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "standin",
		Short: "standin — value vs reference semantics for test doubles",
		Long: `standin runs the canonical capture scenario against both double
realizations and shows which one lets a harness observe a mutation
performed after capture.`,
		Version: version,
	}

	root.AddCommand(newDemoCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
