package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/cashout"
)

func usd(v float64) cashout.Money { return cashout.USD(v) }

func TestReportMarkdown(t *testing.T) {
	positions, err := cashout.Reconstruct([]cashout.Transaction{
		cashout.NewBuy("BTC", cashout.Q(2), usd(20000)),
		cashout.NewBuy("MANA", cashout.Q(30), usd(100)),
	})
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}
	report := cashout.Evaluate(positions, map[string]cashout.Money{
		"BTC":  usd(12000),
		"MANA": usd(2),
	})

	got := ReportMarkdown(&report)

	for _, want := range []string{
		"# Cash Out Report",
		"Account Value:",
		"24060.00", // 24000 BTC + 60 MANA
		"Total spent:",
		"20100.00",
		"Profit if Cash Out:",
		"ROI:",
		"| Coin", "| Spent", "| AvgBuy", "| CurrPrice", "| Fees", "| Profit",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ReportMarkdown() misses %q:\n%s", want, got)
		}
	}

	// BTC is in profit, MANA is not: BTC comes first.
	if btc, mana := strings.Index(got, "BTC"), strings.Index(got, "MANA"); btc < 0 || mana < 0 || btc > mana {
		t.Errorf("ReportMarkdown() rows are not sorted by profit:\n%s", got)
	}
}

func TestReportMarkdown_SummaryIsRightJustified(t *testing.T) {
	positions := map[string]cashout.Position{"BTC": {Asset: "BTC", Spent: usd(20000), Held: cashout.Q(2)}}
	report := cashout.Evaluate(positions, map[string]cashout.Money{"BTC": usd(12000)})

	got := ReportMarkdown(&report)

	var lines []string
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "Account Value:") || strings.HasPrefix(line, "ROI:") {
			lines = append(lines, line)
		}
	}
	if len(lines) != 2 {
		t.Fatalf("summary lines missing:\n%s", got)
	}
	if len(lines[0]) != len(lines[1]) {
		t.Errorf("summary figures are not justified to the same width:\n%q\n%q", lines[0], lines[1])
	}
}

func TestPositionsMarkdown(t *testing.T) {
	positions := map[string]cashout.Position{
		"ETH": {Asset: "ETH", Spent: usd(4000), Held: cashout.Q(10)},
		"BTC": {Asset: "BTC", Spent: usd(20000), Held: cashout.Q(2)},
	}

	got := PositionsMarkdown(positions)

	if !strings.Contains(got, "# Positions") {
		t.Errorf("PositionsMarkdown() misses the title:\n%s", got)
	}
	// sorted by asset
	if btc, eth := strings.Index(got, "BTC"), strings.Index(got, "ETH"); btc < 0 || eth < 0 || btc > eth {
		t.Errorf("PositionsMarkdown() rows are not sorted by asset:\n%s", got)
	}
}

func TestPricesMarkdown(t *testing.T) {
	quotes := map[string]cashout.Money{"BTC": usd(12000)}
	names := map[string]string{"BTC": "Bitcoin"}

	got := PricesMarkdown(quotes, names)

	for _, want := range []string{"# Spot Prices", "BTC", "Bitcoin"} {
		if !strings.Contains(got, want) {
			t.Errorf("PricesMarkdown() misses %q:\n%s", want, got)
		}
	}
}
