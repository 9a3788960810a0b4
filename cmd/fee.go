package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashout"
	"github.com/google/subcommands"
)

// feeCmd holds the flags for the 'fee' subcommand.
type feeCmd struct{}

func (*feeCmd) Name() string     { return "fee" }
func (*feeCmd) Synopsis() string { return "display the fees charged on a trade of a given value" }
func (*feeCmd) Usage() string {
	return `cashout fee <usd-value>...

  Displays, for each given USD notional value, the flat transaction fee and
  the blended fee charged on cashing out a position of that value.
`
}

func (*feeCmd) SetFlags(f *flag.FlagSet) {}

func (c *feeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one USD value is required")
		return subcommands.ExitUsageError
	}

	for _, arg := range f.Args() {
		value, err := cashout.ParseUSD(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid USD value %q: %v\n", arg, err)
			return subcommands.ExitUsageError
		}
		fmt.Printf("%s: flat fee %s, cash out fee %s\n", value, cashout.TransactionFee(value), cashout.LiquidationFee(value))
	}

	return subcommands.ExitSuccess
}
