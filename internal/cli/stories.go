package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ngmaloney/alert-banner/internal/stories"
)

func newStoriesCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stories",
		Short: "List the stories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "ID\tNAME\tBANNERS\n")
			for _, s := range stories.All() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", s.ID, s.Name, len(s.Entries(nil)))
			}
			return w.Flush()
		},
	}
}
