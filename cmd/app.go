// Package cmd implements the CLI application to compute portfolio beta.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/beta"
	"github.com/etnz/beta/eodhd"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application.
// A main package registers them all and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&runCmd{},
	&interactiveCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const eodhdAPIKeyEnv = "EODHD_API_KEY"

var eodhdAPIFlag = flag.String("eodhd-api-key", "", "EODHD API key to use for fetching prices from EODHD.com.\n If missing it will read the environment variable \""+eodhdAPIKeyEnv+"\". You can get one at https://eodhd.com/")

// Provider returns the market data provider configured for this run.
func Provider() (beta.Provider, error) {
	key := *eodhdAPIFlag
	if key == "" {
		key = os.Getenv(eodhdAPIKeyEnv)
	}
	if key == "" {
		return nil, fmt.Errorf("no EODHD API key: set -eodhd-api-key or the %s environment variable", eodhdAPIKeyEnv)
	}
	return eodhd.New(key), nil
}
