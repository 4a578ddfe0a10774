package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/shelfkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the cloud backend
//	-d string   path to the local SQLite database
//	-t string   session token for the cloud backend
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.RemoteEndpoint, "a", cfg.RemoteEndpoint, "base URL of the cloud backend")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path to the local SQLite database")
	fs.StringVar(&cfg.AuthToken, "t", cfg.AuthToken, "session token for the cloud backend")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
