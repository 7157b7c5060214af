package beta

import (
	"fmt"
	"sort"

	"github.com/etnz/beta/date"
)

// PriceTable holds daily adjusted-close price series for a set of tickers.
//
// Each series keeps its dates unique and sorted; a table is built once by a
// Provider and read-only afterwards.
type PriceTable struct {
	series map[string]*date.History[float64]
}

// NewPriceTable returns a new empty price table.
func NewPriceTable() *PriceTable {
	return &PriceTable{series: make(map[string]*date.History[float64])}
}

// Append records the adjusted-close price of a ticker on a given day.
func (t *PriceTable) Append(ticker string, on date.Date, price float64) {
	h, ok := t.series[ticker]
	if !ok {
		h = new(date.History[float64])
		t.series[ticker] = h
	}
	h.Append(on, price)
}

// Has reports whether the table holds a series for the ticker.
func (t *PriceTable) Has(ticker string) bool {
	_, ok := t.series[ticker]
	return ok
}

// Len returns the number of daily prices held for the ticker.
func (t *PriceTable) Len(ticker string) int {
	h, ok := t.series[ticker]
	if !ok {
		return 0
	}
	return h.Len()
}

// Tickers returns the tickers present in the table, sorted.
func (t *PriceTable) Tickers() []string {
	tickers := make([]string, 0, len(t.series))
	for ticker := range t.series {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	return tickers
}

// AlignedReturns derives the simple daily returns of an asset and the
// benchmark over their common dates.
//
// Series are inner-joined by date first: a day missing from either series is
// dropped from both. Returns are then computed against the immediate
// predecessor within the aligned series, so the first aligned day carries no
// return. Both resulting slices have the same length.
//
// It fails with ErrInsufficientData when fewer than 2 aligned dates remain,
// or when fewer than 2 return observations remain: the variance of a single
// return is statistically meaningless and must not reach the estimator.
func (t *PriceTable) AlignedReturns(asset, benchmark string) (assetReturns, benchReturns []float64, err error) {
	a, b := t.series[asset], t.series[benchmark]
	if a == nil || b == nil || a.Len() == 0 || b.Len() == 0 {
		return nil, nil, fmt.Errorf("no common dates between %q and %q: %w", asset, benchmark, ErrInsufficientData)
	}

	// Inner join by date. Iterate yields the union of days in order, Get
	// keeps only the days present in both series.
	var ap, bp []float64
	for on := range date.Iterate(a, b) {
		pa, oka := a.Get(on)
		pb, okb := b.Get(on)
		if !oka || !okb {
			continue
		}
		ap, bp = append(ap, pa), append(bp, pb)
	}

	if len(ap) < 2 {
		return nil, nil, fmt.Errorf("only %d aligned dates between %q and %q: %w", len(ap), asset, benchmark, ErrInsufficientData)
	}
	if len(ap)-1 < 2 {
		return nil, nil, fmt.Errorf("only 1 return observation between %q and %q, need at least 2: %w", asset, benchmark, ErrInsufficientData)
	}

	return simpleReturns(ap), simpleReturns(bp), nil
}

// simpleReturns converts a price sequence to simple (non-log) returns:
// r[i] = (p[i+1] - p[i]) / p[i].
func simpleReturns(prices []float64) []float64 {
	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
	}
	return returns
}
