package cashout

import "errors"

// Kind is a typed string for the "Transaction Type" column of a Coinbase
// transaction history export.
type Kind string

// Transaction kinds recognized in an export.
const (
	Buy     Kind = "Buy"
	Sell    Kind = "Sell"
	Convert Kind = "Convert"
	Receive Kind = "Receive"
	Earn    Kind = "Coinbase Earn"
)

// ErrUnknownKind reports a transaction kind outside the recognized set.
// It aborts the whole reconstruction: a row that cannot be classified would
// silently skew every aggregate.
var ErrUnknownKind = errors.New("unknown transaction type")

// directions maps each kind to the sign of its contribution to a position:
// +1 adds money spent and coins held, -1 subtracts both.
var directions = map[Kind]int{
	Buy:     +1,
	Earn:    +1,
	Receive: +1,
	Sell:    -1,
	Convert: -1,
}

// Transaction is a single line of the transaction history export.
//
// Quantity and the money fields are unsigned as exported; Reconstruct assigns
// the sign from the kind. Notes is free text, only meaningful on Convert rows
// where it encodes the destination leg of the conversion.
type Transaction struct {
	Kind     Kind
	Asset    string // ticker symbol, e.g. "BTC"
	Quantity Quantity
	Spot     Money // spot price at transaction time
	Subtotal Money // amount exclusive of fees
	Total    Money // amount inclusive of fees
	Notes    string
}

// NewBuy creates a buy of quantity coins of asset for total dollars, fees included.
func NewBuy(asset string, quantity Quantity, total Money) Transaction {
	return Transaction{Kind: Buy, Asset: asset, Quantity: quantity, Spot: total.Div(quantity), Subtotal: total, Total: total}
}

// NewSell creates a sell of quantity coins of asset for total dollars, fees included.
func NewSell(asset string, quantity Quantity, total Money) Transaction {
	return Transaction{Kind: Sell, Asset: asset, Quantity: quantity, Spot: total.Div(quantity), Subtotal: total, Total: total}
}

// NewConvert creates a conversion away from asset. The notes field carries the
// destination leg in the export grammar, e.g. "Converted 10 AAA to 5 BBB".
func NewConvert(asset string, quantity Quantity, subtotal, total Money, notes string) Transaction {
	return Transaction{Kind: Convert, Asset: asset, Quantity: quantity, Spot: subtotal.Div(quantity), Subtotal: subtotal, Total: total, Notes: notes}
}

// NewReceive creates an inbound transfer of quantity coins of asset.
func NewReceive(asset string, quantity Quantity, total Money) Transaction {
	return Transaction{Kind: Receive, Asset: asset, Quantity: quantity, Subtotal: total, Total: total}
}

// NewEarn creates a Coinbase Earn reward of quantity coins of asset.
func NewEarn(asset string, quantity Quantity, total Money) Transaction {
	return Transaction{Kind: Earn, Asset: asset, Quantity: quantity, Subtotal: total, Total: total}
}
