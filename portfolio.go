package beta

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/etnz/beta/date"
)

// Request describes one portfolio beta evaluation: the benchmark to compare
// against, the lookback range for return series, and the positions held.
//
// A request is a plain value: building it is the caller's concern (flags,
// prompts, tests), evaluating it is Compute's.
type Request struct {
	Benchmark string
	Range     date.Range
	Positions []Position
}

// Tickers returns the position tickers, sorted, without the benchmark.
func (r Request) Tickers() []string {
	tickers := make([]string, 0, len(r.Positions))
	for _, pos := range r.Positions {
		tickers = append(tickers, pos.Ticker)
	}
	sort.Strings(tickers)
	return tickers
}

// Validate checks the request invariants before any provider call.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Benchmark) == "" {
		return fmt.Errorf("benchmark ticker is empty")
	}
	if !r.Range.IsValid() {
		return fmt.Errorf("invalid date range %s", r.Range)
	}
	if len(r.Positions) == 0 {
		return fmt.Errorf("no positions")
	}
	seen := make(map[string]bool, len(r.Positions))
	for _, pos := range r.Positions {
		if strings.TrimSpace(pos.Ticker) == "" {
			return fmt.Errorf("position with empty ticker")
		}
		if pos.Shares <= 0 {
			return fmt.Errorf("position %q has non-positive shares %v", pos.Ticker, pos.Shares)
		}
		if seen[pos.Ticker] {
			return fmt.Errorf("duplicate position %q", pos.Ticker)
		}
		seen[pos.Ticker] = true
	}
	return nil
}

// Holding is the evaluated state of one position in a report.
type Holding struct {
	Ticker string
	Shares float64
	Weight float64
	Beta   float64
}

// Report is the result of evaluating a Request.
type Report struct {
	Benchmark     string
	Range         date.Range
	Holdings      []Holding // sorted by ticker
	PortfolioBeta float64
}

// PortfolioBeta aggregates per-ticker betas into the portfolio beta as the
// weight-weighted sum, joining weights and betas by ticker.
//
// It performs no normalization: weights are trusted to sum to 1 per the
// Weights postcondition. It fails with ErrMismatchedTickers when the two
// maps do not cover the identical ticker set.
func PortfolioBeta(weights, betas map[string]float64) (float64, error) {
	if len(weights) != len(betas) {
		return 0, fmt.Errorf("%d weights for %d betas: %w", len(weights), len(betas), ErrMismatchedTickers)
	}
	var portfolio float64
	for ticker, w := range weights {
		b, ok := betas[ticker]
		if !ok {
			return 0, fmt.Errorf("no beta for weighted ticker %q: %w", ticker, ErrMismatchedTickers)
		}
		portfolio += w * b
	}
	return portfolio, nil
}

// Compute evaluates a request against a market data provider.
//
// It fetches adjusted-close series for all positions plus the benchmark in
// one provider call, estimates one beta per ticker, derives weights from the
// latest prices (skipping the price fetch for a single-position portfolio),
// and aggregates. Per-ticker failures carry the ticker in their message so
// the culprit is never ambiguous.
func Compute(p Provider, req Request) (*Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tickers := req.Tickers()

	// One batched call for all series, benchmark included. A position on
	// the benchmark itself is fetched once.
	fetch := tickers
	if !slices.Contains(fetch, req.Benchmark) {
		fetch = append(append([]string{}, tickers...), req.Benchmark)
	}
	table, err := p.AdjustedClose(fetch, req.Range)
	if err != nil {
		return nil, err
	}

	betas := make(map[string]float64, len(tickers))
	for _, ticker := range tickers {
		assetReturns, benchReturns, err := table.AlignedReturns(ticker, req.Benchmark)
		if err != nil {
			return nil, err
		}
		b, err := Estimate(assetReturns, benchReturns)
		if err != nil {
			return nil, fmt.Errorf("estimating beta of %q: %w", ticker, err)
		}
		betas[ticker] = b
	}

	var prices map[string]float64
	if len(req.Positions) > 1 {
		prices, err = p.LatestPrice(tickers)
		if err != nil {
			return nil, err
		}
	}
	weights, err := Weights(req.Positions, prices)
	if err != nil {
		return nil, err
	}

	portfolio, err := PortfolioBeta(weights, betas)
	if err != nil {
		return nil, err
	}

	report := &Report{Benchmark: req.Benchmark, Range: req.Range, PortfolioBeta: portfolio}
	for _, pos := range req.Positions {
		report.Holdings = append(report.Holdings, Holding{
			Ticker: pos.Ticker,
			Shares: pos.Shares,
			Weight: weights[pos.Ticker],
			Beta:   betas[pos.Ticker],
		})
	}
	sort.Slice(report.Holdings, func(i, j int) bool {
		return report.Holdings[i].Ticker < report.Holdings[j].Ticker
	})
	return report, nil
}
