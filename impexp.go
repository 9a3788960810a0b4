package cashout

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// this file contains functions to handle the Coinbase export format.

// Column names of the transaction history export.
const (
	colKind     = "Transaction Type"
	colAsset    = "Asset"
	colQuantity = "Quantity Transacted"
	colSpot     = "Spot Price at Transaction"
	colSubtotal = "Subtotal"
	colTotal    = "Total (inclusive of fees)"
	colNotes    = "Notes"
)

// exportPreambleLines is the number of metadata lines Coinbase writes before
// the tabular data in a transaction history export.
const exportPreambleLines = 7

// ImportTransactions reads a CSV generated from the "Transaction History" of
// the "Taxes & Reporting" section on Coinbase.
//
// The export starts with a fixed preamble of metadata lines, followed by a
// header row naming the columns. Extra columns are ignored; a missing
// required column or an unparseable value is a fatal error naming the line.
func ImportTransactions(r io.Reader) ([]Transaction, error) {
	br := bufio.NewReader(r)
	for i := 0; i < exportPreambleLines; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			return nil, fmt.Errorf("cannot skip the %d preamble lines of the export: %w", exportPreambleLines, err)
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read the export header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{colKind, colAsset, colQuantity, colSpot, colSubtotal, colTotal, colNotes} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("column %q is missing from the export", name)
		}
	}

	var transactions []Transaction
	line := exportPreambleLines + 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		field := func(name string) string {
			i := col[name]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		quantity, err := parseQuantityField(field(colQuantity))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid %q: %w", line, colQuantity, err)
		}
		spot, err := parseMoneyField(field(colSpot))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid %q: %w", line, colSpot, err)
		}
		subtotal, err := parseMoneyField(field(colSubtotal))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid %q: %w", line, colSubtotal, err)
		}
		total, err := parseMoneyField(field(colTotal))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid %q: %w", line, colTotal, err)
		}

		transactions = append(transactions, Transaction{
			Kind:     Kind(field(colKind)),
			Asset:    field(colAsset),
			Quantity: quantity,
			Spot:     spot,
			Subtotal: subtotal,
			Total:    total,
			Notes:    field(colNotes),
		})
	}
	return transactions, nil
}

// LoadTransactions imports the transactions from the export file at path.
func LoadTransactions(path string) ([]Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open export file %q: %w", path, err)
	}
	defer f.Close()
	transactions, err := ImportTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("cannot import export file %q: %w", path, err)
	}
	return transactions, nil
}

// parseMoneyField parses a dollar cell of the export. Transfers and rewards
// leave money cells empty; an empty cell is zero.
func parseMoneyField(s string) (Money, error) {
	s = strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", "")
	if s == "" {
		return USD(0), nil
	}
	return ParseUSD(s)
}

// parseQuantityField parses a quantity cell of the export.
func parseQuantityField(s string) (Quantity, error) {
	if s == "" {
		return Q(0), nil
	}
	return ParseQuantity(s)
}
