// Package cmd implements the CLI application to check the profit of cashing
// out a Coinbase portfolio.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cashout"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "report")
	c.Register(&positionsCmd{}, "report")
	c.Register(&pricesCmd{}, "report")

	c.Register(&feeCmd{}, "tools")
	c.Register(&assistCmd{}, "tools")
	c.Register(&topicCmd{}, "tools")
}

// defaultExportFile is where the report commands look for the Coinbase
// transaction history export.
const defaultExportFile = "transactions.csv"

// reconstruct loads the export file and rebuilds the per-asset positions.
func reconstruct(exportFile string) (map[string]cashout.Position, error) {
	transactions, err := cashout.LoadTransactions(exportFile)
	if err != nil {
		return nil, err
	}
	return cashout.Reconstruct(transactions)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// source when rendering is not possible.
func printMarkdown(source string) {
	out, err := glamour.Render(source, "auto")
	if err != nil {
		fmt.Print(source)
		return
	}
	fmt.Print(out)
}
