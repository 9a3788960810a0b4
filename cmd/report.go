package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashout"
	"github.com/etnz/cashout/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	exportFile string
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "display the profit of cashing out the whole portfolio now"
}
func (*reportCmd) Usage() string {
	return `cashout report [-f <export>]

  Rebuilds every position from the transaction history export, fetches the
  current spot price of each asset from Coinbase, and displays what cashing
  out everything right now would yield, net of fees.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exportFile, "f", defaultExportFile, "Path to the Coinbase transaction history export.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	positions, err := reconstruct(c.exportFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	quotes, err := cashout.Quotes(&cashout.CoinbaseAPI{}, positions)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := cashout.Evaluate(positions, quotes)
	printMarkdown(renderer.ReportMarkdown(&report))

	return subcommands.ExitSuccess
}
