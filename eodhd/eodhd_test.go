package eodhd

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/beta"
	"github.com/etnz/beta/date"
)

// testClient returns a client pointed at the test server, without the disk
// cache so every request hits the handler.
func testClient(srv *httptest.Server) *Client {
	return &Client{apiKey: "test-key", baseURL: srv.URL, client: srv.Client()}
}

func TestAdjustedClose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("api_token"); got != "test-key" {
			t.Errorf("api_token = %q want %q", got, "test-key")
		}
		switch r.URL.Path {
		case "/eod/AAPL.US":
			fmt.Fprint(w, `[
				{"date":"2024-01-02","open":1,"close":1,"adjusted_close":185.5,"volume":10},
				{"date":"2024-01-03","open":1,"close":1,"adjusted_close":184.0,"volume":10}
			]`)
		case "/eod/GSPC.INDX":
			fmt.Fprint(w, `[
				{"date":"2024-01-02","adjusted_close":4742.83},
				{"date":"2024-01-03","adjusted_close":4704.81}
			]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := testClient(srv)
	r := date.NewRange(date.New(2024, 1, 1), date.New(2024, 1, 5))

	table, err := c.AdjustedClose([]string{"AAPL.US", "GSPC.INDX", "AAPL.US"}, r)
	if err != nil {
		t.Fatalf("AdjustedClose() error: %v", err)
	}

	if n := table.Len("AAPL.US"); n != 2 {
		t.Errorf("Len(AAPL.US) = %d want 2", n)
	}
	if n := table.Len("GSPC.INDX"); n != 2 {
		t.Errorf("Len(GSPC.INDX) = %d want 2", n)
	}
}

func TestAdjustedCloseUnresolvableTicker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := testClient(srv)
	r := date.NewRange(date.New(2024, 1, 1), date.New(2024, 1, 5))

	_, err := c.AdjustedClose([]string{"NOPE.US"}, r)
	if !errors.Is(err, beta.ErrDataUnavailable) {
		t.Errorf("AdjustedClose() error = %v want ErrDataUnavailable", err)
	}
}

func TestAdjustedCloseEmptyRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	c := testClient(srv)
	r := date.NewRange(date.New(2024, 1, 6), date.New(2024, 1, 7))

	_, err := c.AdjustedClose([]string{"AAPL.US"}, r)
	if !errors.Is(err, beta.ErrDataUnavailable) {
		t.Errorf("AdjustedClose() on empty range error = %v want ErrDataUnavailable", err)
	}
}

func TestLatestPriceSingle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/real-time/AAPL.US" {
			t.Errorf("path = %q want /real-time/AAPL.US", r.URL.Path)
		}
		// single ticker yields one object
		fmt.Fprint(w, `{"code":"AAPL.US","timestamp":1711670340,"close":189.3}`)
	}))
	defer srv.Close()

	prices, err := testClient(srv).LatestPrice([]string{"AAPL.US"})
	if err != nil {
		t.Fatalf("LatestPrice() error: %v", err)
	}
	if prices["AAPL.US"] != 189.3 {
		t.Errorf("prices[AAPL.US] = %v want 189.3", prices["AAPL.US"])
	}
}

func TestLatestPriceBulk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("s"); got != "MSFT.US" {
			t.Errorf("s = %q want MSFT.US", got)
		}
		fmt.Fprint(w, `[
			{"code":"AAPL.US","close":189.3},
			{"code":"MSFT.US","close":420.5}
		]`)
	}))
	defer srv.Close()

	prices, err := testClient(srv).LatestPrice([]string{"AAPL.US", "MSFT.US"})
	if err != nil {
		t.Fatalf("LatestPrice() error: %v", err)
	}
	if prices["AAPL.US"] != 189.3 || prices["MSFT.US"] != 420.5 {
		t.Errorf("prices = %v want AAPL.US:189.3 MSFT.US:420.5", prices)
	}
}

func TestLatestPriceMissingQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the API silently drops unresolvable tickers from bulk responses
		fmt.Fprint(w, `[{"code":"AAPL.US","close":189.3}]`)
	}))
	defer srv.Close()

	_, err := testClient(srv).LatestPrice([]string{"AAPL.US", "NOPE.US"})
	if !errors.Is(err, beta.ErrDataUnavailable) {
		t.Errorf("LatestPrice() error = %v want ErrDataUnavailable", err)
	}
}
