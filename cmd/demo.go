package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tabula/pkg/display"
	"tabula/pkg/key"
	"tabula/pkg/storage/snapshot"
	"tabula/pkg/table"
	"tabula/pkg/tuple"
	"tabula/pkg/types"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build sample tables, run the algebra over them, snapshot the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command) error {
	movie, err := table.NewTableFromText("movie",
		"id title year studioId", "int64 string int64 int64", "id")
	if err != nil {
		return err
	}

	studio, err := table.NewTableFromText("studio",
		"id name", "int64 string", "id")
	if err != nil {
		return err
	}

	movies := [][]any{
		{int64(1), "Alpha", int64(2001), int64(10)},
		{int64(2), "Beta", int64(2002), int64(10)},
		{int64(3), "Gamma", int64(2002), int64(20)},
	}
	for _, m := range movies {
		tup, err := tuple.NewBuilder(movie.TupleDesc()).
			AddInt64(m[0].(int64)).
			AddString(m[1].(string)).
			AddInt64(m[2].(int64)).
			AddInt64(m[3].(int64)).
			Build()
		if err != nil {
			return err
		}
		if err := movie.Insert(tup); err != nil {
			return err
		}
	}

	for _, s := range [][]any{{int64(10), "Fox"}, {int64(20), "Universal"}} {
		tup, err := tuple.NewBuilder(studio.TupleDesc()).
			AddInt64(s[0].(int64)).
			AddString(s[1].(string)).
			Build()
		if err != nil {
			return err
		}
		if err := studio.Insert(tup); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, display.Render(movie))
	fmt.Fprintln(out, display.RenderIndex(movie))

	titles, err := movie.Project([]string{"title", "year"})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, display.Render(titles))

	yearCol, err := movie.TupleDesc().FindFieldIndex("year")
	if err != nil {
		return err
	}
	recent, err := movie.Select(func(t *tuple.Tuple) bool {
		f, _ := t.GetField(yearCol)
		return f.Equals(types.NewInt64Field(2002))
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, display.Render(recent))

	from, err := key.New(types.NewInt64Field(1))
	if err != nil {
		return err
	}
	to, err := key.New(types.NewInt64Field(2))
	if err != nil {
		return err
	}
	early, err := movie.RangeSelect(from, to)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, display.Render(early))

	both, err := recent.Union(early)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, display.Render(both))

	rest, err := movie.Minus(recent)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, display.Render(rest))

	joined, err := movie.IndexedJoin([]string{"studioId"}, []string{"id"}, studio)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, display.Render(joined))

	store := snapshot.NewFileStore(storeDir)
	for _, t := range []*table.Table{movie, studio, joined} {
		if err := store.Save(t); err != nil {
			fmt.Fprintf(out, "save %s failed: %v\n", t.Name(), err)
		}
	}
	fmt.Fprintf(out, "snapshots written to %s/\n", storeDir)
	return nil
}
