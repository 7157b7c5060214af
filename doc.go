// Package beta estimates the systematic-risk coefficient (Beta) of a
// portfolio of equity positions against a benchmark index, from historical
// daily adjusted-close prices.
//
// The package is three pure computations composed linearly:
//   - Return building: two price series are inner-joined by date and turned
//     into aligned simple daily returns (PriceTable.AlignedReturns).
//   - Beta estimation: Beta = Cov(asset, benchmark) / Var(benchmark) on the
//     aligned returns, sample convention on both moments (Estimate).
//   - Aggregation: position weights are derived from share counts and
//     current prices (Weights), and per-ticker betas combine into the
//     portfolio beta as a weighted sum (PortfolioBeta).
//
// Market data comes from a Provider; the eodhd subpackage implements one
// against EODHD.com. Weights and betas are always joined by ticker, never
// by position order, so a provider reordering its columns cannot silently
// mispair them.
//
// This package serves the `pb` command-line tool. It is a tool for personal
// and educational use and should not be considered financial advice.
package beta
