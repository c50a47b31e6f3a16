package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDumpCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the corpus graph for diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := st.loadCorpus()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), c.Graph.String())

			return err
		},
	}
}
