package cli

import (
	"fmt"

	"github.com/dmitrijs2005/shelfkeeper/internal/config"
	"github.com/spf13/cobra"
)

func newSyncCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one load/merge/persist cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := buildService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Load(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "state: %s\n", res.State)
			if res.LoadError != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", res.LoadError)
			}
			if res.HasLocalImport {
				fmt.Fprintln(cmd.OutOrStdout(), "note: local-only data present, not yet synced")
			}
			for _, c := range res.Collections {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d items\n", c.ID, c.Name, len(c.Items))
			}
			return nil
		},
	}
}
