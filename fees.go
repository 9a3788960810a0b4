package cashout

// Coinbase fee policy, per
// https://www.gobankingrates.com/investing/crypto/coinbase-fees/

// flatCutoffs are the ascending notional-value boundaries of the flat fee
// tiers. A value equal to a cutoff falls into the higher tier.
var flatCutoffs = []Money{USD(10), USD(25), USD(50), USD(200)}

// flatFees are the fees of each tier. Trades of 200 USD and above pay no flat
// fee at all: the percentage fees dominate there.
var flatFees = []Money{USD(0.99), USD(1.49), USD(1.99), USD(2.99)}

const (
	spreadRate     = 0.005  // spread charged on every trade
	conversionRate = 0.0149 // percentage fee on converting crypto back to fiat
)

// TransactionFee returns the flat fee charged on a trade of the given
// notional value.
func TransactionFee(value Money) Money {
	i := 0
	for i < len(flatCutoffs) && !value.LessThan(flatCutoffs[i]) {
		i++
	}
	if i == len(flatFees) {
		return USD(0)
	}
	return flatFees[i]
}

// LiquidationFee returns the blended fee charged on selling a whole position
// worth value: the spread plus the greater of the percentage conversion fee
// and the flat fee. The two fee schedules never stack.
func LiquidationFee(value Money) Money {
	spread := value.Mul(Q(spreadRate))
	conversion := value.Mul(Q(conversionRate))
	flat := TransactionFee(value)
	if conversion.GreaterThan(flat) {
		return spread.Add(conversion)
	}
	return spread.Add(flat)
}
