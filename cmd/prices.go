package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/cashout"
	"github.com/etnz/cashout/renderer"
	"github.com/google/subcommands"
)

// pricesCmd holds the flags for the 'prices' subcommand.
type pricesCmd struct {
	exportFile string
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "display current spot prices" }
func (*pricesCmd) Usage() string {
	return `cashout prices [-f <export>] [ticker...]

  Displays the current USD spot price of the given tickers. Without
  arguments, prices every asset found in the transaction history export.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exportFile, "f", defaultExportFile, "Path to the Coinbase transaction history export.")
}

func (c *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	assets := f.Args()
	if len(assets) == 0 {
		positions, err := reconstruct(c.exportFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		for asset := range positions {
			assets = append(assets, asset)
		}
	}

	api := new(cashout.CoinbaseAPI)
	quotes := make(map[string]cashout.Money, len(assets))
	for _, asset := range assets {
		price, err := api.SpotPrice(asset)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		quotes[asset] = price
	}

	names, err := api.CurrencyNames()
	if err != nil {
		// names only decorate the table
		log.Printf("currency listing unavailable: %v", err)
	}

	printMarkdown(renderer.PricesMarkdown(quotes, names))

	return subcommands.ExitSuccess
}
