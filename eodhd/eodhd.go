// Package eodhd implements the beta.Provider contract against the
// EODHD.com market data API.
package eodhd

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/etnz/beta"
	"github.com/etnz/beta/date"
	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://eodhd.com/api"

// Client fetches adjusted-close history and latest prices from EODHD.
//
// The zero value is not usable; use New. Responses are cached on disk with
// daily expiry, so repeated runs within a day do not re-hit the API.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New returns a client using the given API key and a daily-expiring disk
// cache for HTTP responses.
func New(apiKey string) *Client {
	return &Client{apiKey: apiKey, baseURL: defaultBaseURL, client: newDailyCachingClient()}
}

var _ beta.Provider = (*Client)(nil)

// AdjustedClose fetches the daily adjusted-close series for every ticker
// over the range, one API call per ticker.
//
// EODHD ticker format is "SYMBOL.EXCHANGE", e.g. "AAPL.US" or "GSPC.INDX".
func (c *Client) AdjustedClose(tickers []string, r date.Range) (*beta.PriceTable, error) {
	// https://eodhd.com/api/eod/AAPL.US?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },
	// bounds are included in the response; from/to use the 'YYYY-MM-DD' format.
	type row struct {
		Date          date.Date       `json:"date"`
		AdjustedClose decimal.Decimal `json:"adjusted_close"`
	}

	table := beta.NewPriceTable()
	for _, ticker := range dedupe(tickers) {
		addr := fmt.Sprintf("%s/eod/%s?fmt=json&api_token=%s&from=%s&to=%s", c.baseURL, ticker, c.apiKey, r.From, r.To)

		content := make([]row, 0)
		if err := jwget(c.client, addr, &content); err != nil {
			return nil, fmt.Errorf("fetching prices for %q: %v: %w", ticker, err, beta.ErrDataUnavailable)
		}
		if len(content) == 0 {
			return nil, fmt.Errorf("no prices for %q in %s: %w", ticker, r, beta.ErrDataUnavailable)
		}
		for _, row := range content {
			table.Append(ticker, row.Date, row.AdjustedClose.InexactFloat64())
		}
	}
	return table, nil
}

// LatestPrice fetches the latest known price for every ticker in a single
// bulk API call.
func (c *Client) LatestPrice(tickers []string) (map[string]float64, error) {
	// https://eodhd.com/api/real-time/AAPL.US?s=MSFT.US,TSLA.US&api_token=demo&fmt=json
	// A single ticker yields one object, several yield an array.
	type quote struct {
		Code  string          `json:"code"`
		Close decimal.Decimal `json:"close"`
	}

	tickers = dedupe(tickers)
	if len(tickers) == 0 {
		return nil, fmt.Errorf("no tickers to quote: %w", beta.ErrDataUnavailable)
	}

	addr := fmt.Sprintf("%s/real-time/%s?fmt=json&api_token=%s", c.baseURL, tickers[0], c.apiKey)
	if rest := tickers[1:]; len(rest) > 0 {
		addr += "&s=" + strings.Join(rest, ",")
	}

	quotes := make([]quote, 0, len(tickers))
	if len(tickers) == 1 {
		var q quote
		if err := jwget(c.client, addr, &q); err != nil {
			return nil, fmt.Errorf("fetching quote for %q: %v: %w", tickers[0], err, beta.ErrDataUnavailable)
		}
		quotes = append(quotes, q)
	} else {
		if err := jwget(c.client, addr, &quotes); err != nil {
			return nil, fmt.Errorf("fetching quotes for %v: %v: %w", tickers, err, beta.ErrDataUnavailable)
		}
	}

	prices := make(map[string]float64, len(quotes))
	for _, q := range quotes {
		prices[q.Code] = q.Close.InexactFloat64()
	}
	for _, ticker := range tickers {
		if _, ok := prices[ticker]; !ok {
			return nil, fmt.Errorf("no quote for %q: %w", ticker, beta.ErrDataUnavailable)
		}
	}
	return prices, nil
}

// dedupe returns the tickers with duplicates removed, order preserved.
func dedupe(tickers []string) []string {
	seen := make(map[string]bool, len(tickers))
	out := make([]string, 0, len(tickers))
	for _, t := range tickers {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
