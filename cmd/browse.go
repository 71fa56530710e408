package cmd

import (
	"github.com/spf13/cobra"

	"tabula/pkg/display"
	"tabula/pkg/storage/snapshot"
)

var browseCmd = &cobra.Command{
	Use:   "browse <table>",
	Short: "Open a table snapshot in the interactive viewer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := snapshot.NewFileStore(storeDir)
		t, err := store.Load(args[0])
		if err != nil {
			return err
		}
		return display.RunBrowser(t)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
