package cashout

import (
	"strings"
	"testing"
)

const exportPreamble = `"You can use this transaction report to inform your likely tax obligations."

"User","someone@example.com"
"Account","1111111111"
"From","2020-01-01"
"To","2021-01-01"

`

func TestImportTransactions(t *testing.T) {
	export := exportPreamble +
		`Timestamp,Transaction Type,Asset,Quantity Transacted,Spot Price Currency,Spot Price at Transaction,Subtotal,Total (inclusive of fees),Fees,Notes
2020-06-10T17:20:25Z,Buy,BTC,2.0,USD,9750.00,19500.00,20000.00,500.00,Bought 2.0 BTC for $20000.00 USD
2020-07-02T09:01:10Z,Coinbase Earn,BAND,1.52,USD,5.90,"",8.97,"",Received 1.52 BAND from Coinbase Earn
2020-08-15T12:00:00Z,Convert,MANA,29.98841098,USD,3.34,100.24,101.99,1.75,Converted 29.98841098 MANA to 36.78628798 LRC
`

	transactions, err := ImportTransactions(strings.NewReader(export))
	if err != nil {
		t.Fatalf("ImportTransactions() error = %v", err)
	}
	if len(transactions) != 3 {
		t.Fatalf("ImportTransactions() returned %d transactions, want 3", len(transactions))
	}

	buy := transactions[0]
	if buy.Kind != Buy || buy.Asset != "BTC" {
		t.Errorf("first row = %+v, want a BTC buy", buy)
	}
	if !buy.Quantity.Equal(Q(2)) || !buy.Total.Equal(USD(20000)) || !buy.Subtotal.Equal(USD(19500)) {
		t.Errorf("first row figures = %+v, want quantity 2, subtotal 19500, total 20000", buy)
	}

	earn := transactions[1]
	if earn.Kind != Earn || !earn.Subtotal.IsZero() {
		t.Errorf("second row = %+v, want a Coinbase Earn with empty subtotal read as zero", earn)
	}

	convert := transactions[2]
	if convert.Kind != Convert || !convert.Subtotal.Equal(USD(100.24)) {
		t.Errorf("third row = %+v, want a Convert with subtotal 100.24", convert)
	}
	if convert.Notes != "Converted 29.98841098 MANA to 36.78628798 LRC" {
		t.Errorf("third row notes = %q", convert.Notes)
	}
}

func TestImportTransactions_MissingColumn(t *testing.T) {
	export := exportPreamble +
		`Timestamp,Transaction Type,Asset,Quantity Transacted,Spot Price at Transaction,Total (inclusive of fees),Notes
2020-06-10T17:20:25Z,Buy,BTC,2.0,9750.00,20000.00,""
`

	if _, err := ImportTransactions(strings.NewReader(export)); err == nil {
		t.Fatal("ImportTransactions() accepted an export without a Subtotal column")
	}
}

func TestImportTransactions_BadNumber(t *testing.T) {
	export := exportPreamble +
		`Timestamp,Transaction Type,Asset,Quantity Transacted,Spot Price Currency,Spot Price at Transaction,Subtotal,Total (inclusive of fees),Fees,Notes
2020-06-10T17:20:25Z,Buy,BTC,two,USD,9750.00,19500.00,20000.00,500.00,""
`

	if _, err := ImportTransactions(strings.NewReader(export)); err == nil {
		t.Fatal("ImportTransactions() accepted a non numeric quantity")
	}
}

func TestImportTransactions_TruncatedPreamble(t *testing.T) {
	if _, err := ImportTransactions(strings.NewReader("only one line\n")); err == nil {
		t.Fatal("ImportTransactions() accepted a file shorter than the preamble")
	}
}
