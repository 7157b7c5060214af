package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/beta"
	"github.com/etnz/beta/date"
)

func TestReportMarkdownSingleHolding(t *testing.T) {
	r := &beta.Report{
		Benchmark:     "GSPC.INDX",
		Range:         date.NewRange(date.New(2023, 1, 1), date.New(2024, 1, 1)),
		Holdings:      []beta.Holding{{Ticker: "AAPL.US", Shares: 10, Weight: 1, Beta: 1.25}},
		PortfolioBeta: 1.25,
	}

	got := ReportMarkdown(r)
	for _, want := range []string{"Beta of AAPL.US", "GSPC.INDX", "1.2500"} {
		if !strings.Contains(got, want) {
			t.Errorf("ReportMarkdown() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Portfolio Beta") {
		t.Errorf("single holding should not render as a portfolio:\n%s", got)
	}
}

func TestReportMarkdownPortfolio(t *testing.T) {
	r := &beta.Report{
		Benchmark: "GSPC.INDX",
		Range:     date.NewRange(date.New(2023, 1, 1), date.New(2024, 1, 1)),
		Holdings: []beta.Holding{
			{Ticker: "AAPL.US", Shares: 10, Weight: 0.4, Beta: 1.2},
			{Ticker: "MSFT.US", Shares: 5, Weight: 0.6, Beta: 0.9},
		},
		PortfolioBeta: 1.02,
	}

	got := ReportMarkdown(r)
	for _, want := range []string{"Portfolio Beta", "AAPL.US", "MSFT.US", "40.00%", "60.00%", "1.0200"} {
		if !strings.Contains(got, want) {
			t.Errorf("ReportMarkdown() missing %q in:\n%s", want, got)
		}
	}
}
