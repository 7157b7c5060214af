package beta

import "fmt"

// Position is a holding of a ticker, in number of shares.
// Fractional shares are allowed; shares must be strictly positive.
type Position struct {
	Ticker string
	Shares float64
}

// Weights converts positions and current prices into the fraction of total
// portfolio market value held in each ticker, keyed by ticker.
//
// A single-position portfolio weighs exactly 1.0 without looking at prices.
// Otherwise weight(t) = price(t)*shares(t) / total market value.
//
// It fails with ErrMissingPrice when a position has no price, and with
// ErrZeroValuation when the total computes to zero. The resulting weights
// are all positive and sum to 1 within floating tolerance.
func Weights(positions []Position, prices map[string]float64) (map[string]float64, error) {
	if len(positions) == 0 {
		return nil, fmt.Errorf("no positions")
	}
	if len(positions) == 1 {
		return map[string]float64{positions[0].Ticker: 1.0}, nil
	}

	values := make(map[string]float64, len(positions))
	var total float64
	for _, pos := range positions {
		price, ok := prices[pos.Ticker]
		if !ok {
			return nil, fmt.Errorf("no current price for %q: %w", pos.Ticker, ErrMissingPrice)
		}
		v := price * pos.Shares
		values[pos.Ticker] = v
		total += v
	}
	if total == 0 {
		return nil, fmt.Errorf("total portfolio value is zero: %w", ErrZeroValuation)
	}

	weights := make(map[string]float64, len(values))
	for ticker, v := range values {
		weights[ticker] = v / total
	}
	return weights, nil
}
