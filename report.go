package cashout

import (
	"maps"
	"slices"
	"sort"
)

// Row is the profitability of liquidating one asset at its current price.
type Row struct {
	Asset   string
	Spent   Money    // net cash put into the asset
	Held    Quantity // coins currently held
	AvgCost Money    // average price paid per coin
	Price   Money    // current spot price
	Value   Money    // Price x Held
	Fee     Money    // blended fee on selling the whole position
	Profit  Money    // Value - Fee - Spent
}

// Summary aggregates the whole portfolio.
type Summary struct {
	Value  Money    // current account value
	Spent  Money    // total cash put in
	Fees   Money    // total fees on cashing out
	Profit Money    // profit if cashing out now
	ROI    Quantity // (Spent + Profit) / Spent, unitless
}

// Report is the final profitability report, rows ordered by profit descending.
type Report struct {
	Rows    []Row
	Summary Summary
}

// Evaluate joins reconstructed positions with current spot prices.
//
// The join is inner: an asset with a position but no quote is excluded from
// the report. Callers that fetch quotes with Quotes never hit that case since
// a failed lookup aborts the run first.
//
// ROI computation panics when total spent is zero; so does the average cost
// of a position whose held quantity is zero.
func Evaluate(positions map[string]Position, quotes map[string]Money) Report {
	var rows []Row
	var s Summary
	for _, asset := range slices.Sorted(maps.Keys(positions)) {
		price, ok := quotes[asset]
		if !ok {
			continue
		}
		p := positions[asset]
		value := price.Mul(p.Held)
		fee := LiquidationFee(value)
		profit := value.Sub(fee).Sub(p.Spent)
		rows = append(rows, Row{
			Asset:   asset,
			Spent:   p.Spent,
			Held:    p.Held,
			AvgCost: p.AvgCost(),
			Price:   price,
			Value:   value,
			Fee:     fee,
			Profit:  profit,
		})
		s.Value = s.Value.Add(value)
		s.Spent = s.Spent.Add(p.Spent)
		s.Fees = s.Fees.Add(fee)
		s.Profit = s.Profit.Add(profit)
	}
	s.ROI = s.Spent.Add(s.Profit).DivPrice(s.Spent)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Profit.GreaterThan(rows[j].Profit) })
	return Report{Rows: rows, Summary: s}
}
