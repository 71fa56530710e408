package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tabula/pkg/catalog"
	"tabula/pkg/storage/snapshot"
)

var createCmd = &cobra.Command{
	Use:   "create <catalog.yaml>",
	Short: "Create empty tables from a YAML catalog and snapshot them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.LoadFile(args[0])
		if err != nil {
			return err
		}

		tables, err := cat.Build()
		if err != nil {
			return err
		}

		store := snapshot.NewFileStore(storeDir)
		out := cmd.OutOrStdout()
		for _, t := range tables {
			if err := store.Save(t); err != nil {
				return err
			}
			fmt.Fprintf(out, "created %s (%s)\n", t.Name(), t.TupleDesc().String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
