package cli

import (
	"github.com/dmitrijs2005/shelfkeeper/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the shelfkeeper command tree. The persistent flags
// mirror the ones the config package reads, so cobra accepts them on any
// subcommand; cfg already carries their parsed values.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "shelfkeeper",
		Short:         "Offline-first personal collection tracker",
		Long:          "Shelfkeeper catalogues collections of items and keeps the local dataset\nsynchronized with a cloud backend when one is configured.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&cfg.RemoteEndpoint, "endpoint", "a", cfg.RemoteEndpoint, "base URL of the cloud backend")
	root.PersistentFlags().StringVarP(&cfg.DatabaseDSN, "db", "d", cfg.DatabaseDSN, "path to the local SQLite database")
	root.PersistentFlags().StringVarP(&cfg.AuthToken, "token", "t", cfg.AuthToken, "session token for the cloud backend")
	// -c is registered for acceptance only; the config package already
	// consumed it from os.Args when cfg was built
	root.PersistentFlags().StringP("config", "c", "", "path to a JSON config file")

	root.AddCommand(
		newSyncCmd(cfg),
		newListCmd(cfg),
		newAddCmd(cfg),
	)
	return root
}
