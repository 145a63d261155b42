package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every post and list the collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		posts, err := app.Collection(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LANG\tDATE\tSTATUS\tPATH\tFILE")
		for _, e := range posts.SortedByDate() {
			status := "published"
			if e.Data.Draft {
				status = "draft"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				e.Data.Lang, e.Data.PubDate.Format("2006-01-02"), status,
				app.Config.Routing.Path(e.Data.Lang, "blog", e.Slug), e.ID)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d posts OK\n", len(posts))
		return nil
	},
}
