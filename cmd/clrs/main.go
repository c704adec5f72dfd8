// Command clrs runs the chapter demos on top of the algorithms, sampling and
// matrix packages.
//
// Usage:
//
//	clrs chapter2 [--n 10] [--mean 0] [--std 1]
//	clrs matrix
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("clrs: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree. Tests build a fresh tree per run.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "clrs",
		Short:         "Demos for the clrs algorithms and matrix packages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newChapter2Cmd(), newMatrixCmd())

	return root
}
