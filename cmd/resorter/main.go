package main

import (
	"fmt"
	"os"

	"github.com/mwantia/resorter/cmd/resorter/cli"
	"github.com/mwantia/resorter/cmd/resorter/cli/client"
	"github.com/mwantia/resorter/cmd/resorter/cli/server"
)

var (
	version = "0.0.1-dev"
	commit  = "main"
)

func main() {
	root := cli.NewRootCommand(cli.VersionInfo{
		Version: version,
		Commit:  commit,
	})

	root.AddCommand(cli.NewVersionCommand())

	root.AddCommand(server.NewServeCommand())
	root.AddCommand(server.NewConfigCommand())
	root.AddCommand(server.NewDatabaseCommand())

	root.AddCommand(client.NewCandidatesCommand())
	root.AddCommand(client.NewPresetCommand())

	if err := root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
