package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashout"
	"github.com/etnz/cashout/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	exportFile string
	model      string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask Gemini to comment on the cash out report" }
func (*assistCmd) Usage() string {
	return `cashout assist [-f <export>] [question]

  Computes the cash out report and asks Gemini to comment on it, optionally
  answering a specific question. The Gemini client reads its credentials
  from the environment (GEMINI_API_KEY).
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exportFile, "f", defaultExportFile, "Path to the Coinbase transaction history export.")
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Gemini model to use.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	question := "Comment on this report in a few short paragraphs."
	if f.NArg() > 0 {
		question = f.Arg(0)
	}
	prompt := fmt.Sprintf(`You are reviewing the hypothetical result of liquidating a
cryptocurrency portfolio at current prices, fees included.

%s

%s`, renderer.ReportMarkdown(&report), question)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Gemini request failed:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(result.Text())

	return subcommands.ExitSuccess
}
