// sourcemap is a small CLI front-end for the engine in the repository
// root: it merges JSON source-map documents at line/column offsets and
// prints or writes the combined map.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "sourcemap",
		Short: "Merge and inspect JavaScript source maps",
	}

	root.AddCommand(newMergeCommand())
	root.AddCommand(newInspectCommand())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sourcemap version %s\n", version)
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sourcemap: %v\n", err)
		os.Exit(1)
	}
}
