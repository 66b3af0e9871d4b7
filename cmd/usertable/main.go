// Command usertable browses a remote collection of user records as a
// searchable, sortable, paginated table.
package main

import (
	"os"

	"github.com/rshade/usertable/internal/cli"
	"github.com/rshade/usertable/pkg/version"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}
