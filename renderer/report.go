// Package renderer turns cashout report structs into markdown text.
package renderer

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/etnz/cashout"
	md "github.com/nao1215/markdown"
)

// summaryWidth is the column all summary figures are right-justified to.
const summaryWidth = 14

// ReportMarkdown renders the full cash-out report: the portfolio summary
// followed by the per-asset table, most profitable asset first.
func ReportMarkdown(r *cashout.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cash Out Report")

	s := r.Summary
	summary := fmt.Sprintf("%-22s%*s\n", "Account Value:", summaryWidth, s.Value.StringFixed(2)) +
		fmt.Sprintf("%-22s%*s\n", "Total spent:", summaryWidth, s.Spent.StringFixed(2)) +
		fmt.Sprintf("%-22s%*s\n", "Total fees:", summaryWidth, s.Fees.StringFixed(2)) +
		fmt.Sprintf("%-22s%*s\n", "Profit if Cash Out:", summaryWidth, s.Profit.StringFixed(2)) +
		fmt.Sprintf("%-22s%*s", "ROI:", summaryWidth, s.ROI.StringFixed(2))
	doc.CodeBlocks(md.SyntaxHighlightText, summary)

	table := md.TableSet{
		Header: []string{"Coin", "Spent", "Amt", "AvgBuy", "CurrPrice", "Fees", "Profit"},
	}
	for _, row := range r.Rows {
		table.Rows = append(table.Rows, []string{
			row.Asset,
			row.Spent.String(),
			row.Held.String(),
			row.AvgCost.String(),
			row.Price.String(),
			row.Fee.String(),
			row.Profit.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// PositionsMarkdown renders the reconstructed positions, sorted by asset.
func PositionsMarkdown(positions map[string]cashout.Position) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Positions")

	table := md.TableSet{
		Header: []string{"Coin", "Spent", "Amt", "AvgBuy"},
	}
	for _, asset := range slices.Sorted(maps.Keys(positions)) {
		p := positions[asset]
		table.Rows = append(table.Rows, []string{
			p.Asset,
			p.Spent.String(),
			p.Held.String(),
			p.AvgCost().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// PricesMarkdown renders current spot prices, sorted by asset. names may be
// nil when the currency listing is unavailable.
func PricesMarkdown(quotes map[string]cashout.Money, names map[string]string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Spot Prices")

	table := md.TableSet{
		Header: []string{"Coin", "Name", "Price"},
	}
	for _, asset := range slices.Sorted(maps.Keys(quotes)) {
		table.Rows = append(table.Rows, []string{
			asset,
			names[asset],
			quotes[asset].String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
