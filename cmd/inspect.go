package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tabula/pkg/display"
	"tabula/pkg/storage/snapshot"
)

var showIndex bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <table>",
	Short: "Load a table snapshot and print its contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := snapshot.NewFileStore(storeDir)
		t, err := store.Load(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, display.Render(t))
		if showIndex {
			fmt.Fprintln(out, display.RenderIndex(t))
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&showIndex, "index", false, "also print the primary-key index")
	rootCmd.AddCommand(inspectCmd)
}
