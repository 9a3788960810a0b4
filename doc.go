// Package cashout computes the hypothetical profit of liquidating an entire
// Coinbase portfolio at current spot prices, net of exchange fees.
//
// The core functionalities include:
//   - Ledger Reconstruction: rebuilding each asset's position (total spent,
//     total held, average cost) from a "Transaction History" CSV export,
//     including the implicit buy legs that Coinbase omits for conversions.
//   - Fee Model: the tiered flat fee charged on small trades, and the blended
//     spread + conversion fee charged on a full liquidation.
//   - Profitability Report: joining reconstructed positions with live spot
//     prices to compute per-asset and portfolio-level profit and ROI.
//
// Prices are fetched fresh on every run from the public Coinbase API; nothing
// is persisted. This package serves as the foundational logic for the
// `cashout` command-line tool.
package cashout
