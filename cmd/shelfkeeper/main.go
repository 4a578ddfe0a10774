package main

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/shelfkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/shelfkeeper/internal/cli"
	"github.com/dmitrijs2005/shelfkeeper/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	cfg := config.LoadConfig()

	if err := cli.NewRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
