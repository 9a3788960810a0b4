package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashout/renderer"
	"github.com/google/subcommands"
)

// positionsCmd holds the flags for the 'positions' subcommand.
type positionsCmd struct {
	exportFile string
}

func (*positionsCmd) Name() string { return "positions" }
func (*positionsCmd) Synopsis() string {
	return "display the positions reconstructed from the transaction history"
}
func (*positionsCmd) Usage() string {
	return `cashout positions [-f <export>]

  Rebuilds every position from the transaction history export and displays
  the amount spent, the amount held and the average buy price per asset.
  No network access: this is the reconstruction alone.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exportFile, "f", defaultExportFile, "Path to the Coinbase transaction history export.")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	positions, err := reconstruct(c.exportFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PositionsMarkdown(positions))

	return subcommands.ExitSuccess
}
