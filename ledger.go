package cashout

import (
	"fmt"
	"slices"
)

// Position is an asset's aggregate figures derived from the whole ledger.
type Position struct {
	Asset string
	Spent Money    // net cash outflow across all legs, signed
	Held  Quantity // net quantity across all legs, signed
}

// AvgCost returns the average price paid per coin held.
//
// It panics when Held is zero: the ratio is undefined for a fully liquidated
// position and is never silently defaulted.
func (p Position) AvgCost() Money { return p.Spent.Div(p.Held) }

// Reconstruct rebuilds per-asset positions from a transaction history.
//
// Convert rows are expanded first: each one stays as the subtract leg of its
// source asset, and an implicit buy leg is synthesized for the destination
// asset (quantity from the note, amount from the row's subtotal). Then every
// leg contributes its total and quantity, signed by the kind's direction, to
// the position of its asset.
//
// Reconstruct is pure and deterministic. On any unrecognized kind or
// unparseable conversion note it returns a nil map: no partial results.
func Reconstruct(transactions []Transaction) (map[string]Position, error) {
	for i, t := range transactions {
		if _, ok := directions[t.Kind]; !ok {
			return nil, fmt.Errorf("row %d: %w %q", i, ErrUnknownKind, t.Kind)
		}
	}

	legs := slices.Clone(transactions)
	for i, t := range transactions {
		if t.Kind != Convert {
			continue
		}
		c, err := parseConversion(t.Notes)
		if err != nil {
			return nil, &ConversionError{Row: i, Notes: t.Notes}
		}
		// The conversion is modeled as spending the row's subtotal to buy
		// the destination coins.
		legs = append(legs, Transaction{
			Kind:     Buy,
			Asset:    c.ToAsset,
			Quantity: c.ToQuantity,
			Spot:     t.Subtotal.Div(c.ToQuantity),
			Subtotal: t.Subtotal,
			Total:    t.Subtotal,
		})
	}

	positions := make(map[string]Position)
	for _, t := range legs {
		p := positions[t.Asset]
		p.Asset = t.Asset
		if directions[t.Kind] > 0 {
			p.Spent = p.Spent.Add(t.Total)
			p.Held = p.Held.Add(t.Quantity)
		} else {
			p.Spent = p.Spent.Sub(t.Total)
			p.Held = p.Held.Sub(t.Quantity)
		}
		positions[t.Asset] = p
	}
	return positions, nil
}
