package beta

import "github.com/etnz/beta/date"

// Provider supplies the market data the beta computations need.
//
// Implementations are expected to batch: one AdjustedClose call covers all
// tickers of a request, including the benchmark. Results are keyed by
// ticker, never by request order.
type Provider interface {
	// AdjustedClose returns the daily adjusted-close series for every
	// requested ticker over the range. It fails with ErrDataUnavailable if
	// a ticker cannot be resolved or the range yields no rows for it.
	AdjustedClose(tickers []string, r date.Range) (*PriceTable, error)

	// LatestPrice returns the latest known price for every requested
	// ticker. It fails with ErrDataUnavailable analogously.
	LatestPrice(tickers []string) (map[string]float64, error)
}
