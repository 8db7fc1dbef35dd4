/*
Command verdin-dump fetches an HTML document, builds the node arena and
prints the resulting tree.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tbeck/verdin/dom"
	"github.com/tbeck/verdin/fetch"
)

var showStats bool

var rootCmd = &cobra.Command{
	Use:   "verdin-dump <url>",
	Short: "Fetch an HTML document and dump its node tree",
	Long: `verdin-dump fetches a document from a data:, file: or http(s) URL,
builds the arena-indexed node tree and prints it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := fetch.NewService(nil, nil)
		text, err := svc.Text(args[0])
		if err != nil {
			return err
		}
		arena, err := dom.BuildArenaFromString(text)
		if err != nil {
			return fmt.Errorf("cannot parse document: %w", err)
		}
		fmt.Print(arena.Root().DumpTree())
		if showStats {
			fmt.Printf("%d nodes\n", arena.Len())
		}
		return nil
	},
}

func main() {
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "print node statistics")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
