package cli

import (
	"fmt"

	"github.com/dmitrijs2005/shelfkeeper/internal/config"
	"github.com/dmitrijs2005/shelfkeeper/internal/localstore"
	"github.com/spf13/cobra"
)

func newListCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the locally stored collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := localstore.InitDatabase(cmd.Context(), cfg.DatabaseDSN)
			if err != nil {
				return err
			}
			defer store.Close()

			cols, err := store.GetCollections(cmd.Context())
			if err != nil {
				return err
			}
			if len(cols) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no collections yet")
				return nil
			}
			for _, c := range cols {
				marker := ""
				if c.LocalOnly() {
					marker = " (local only)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d items%s\n", c.ID, c.Name, len(c.Items), marker)
			}
			return nil
		},
	}
}
