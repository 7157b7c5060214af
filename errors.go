package beta

import "errors"

// Failure kinds of the beta computations. They are always wrapped with
// context, so callers branch with errors.Is instead of parsing messages.
var (
	// ErrDataUnavailable reports that the market data provider could not
	// resolve a ticker or that the requested range yielded no rows.
	ErrDataUnavailable = errors.New("market data unavailable")

	// ErrInsufficientData reports that too few aligned observations remain
	// to estimate variance or covariance.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDegenerateBenchmark reports a benchmark with zero return variance.
	ErrDegenerateBenchmark = errors.New("degenerate benchmark")

	// ErrMissingPrice reports a position with no corresponding current price.
	ErrMissingPrice = errors.New("missing price")

	// ErrZeroValuation reports a portfolio whose total market value is zero.
	ErrZeroValuation = errors.New("zero portfolio valuation")

	// ErrMismatchedTickers reports that weights and betas do not cover the
	// same set of tickers.
	ErrMismatchedTickers = errors.New("mismatched ticker sets")
)
