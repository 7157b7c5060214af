package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/beta"
	"github.com/etnz/beta/date"
	"github.com/etnz/beta/renderer"
	"github.com/google/subcommands"
)

// runCmd holds the flags for the 'run' subcommand.
type runCmd struct {
	benchmark string
	start     string
	end       string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "compute the portfolio beta from positions given as arguments" }
func (*runCmd) Usage() string {
	return `pb run -benchmark <ticker> -s <date> [-d <date>] TICKER=SHARES ...

  Computes the beta of each position against the benchmark over the lookback
  range, and aggregates them into the portfolio beta weighted by current
  market value.

Usage Examples:
$ pb run -benchmark GSPC.INDX -s 2023-01-01 AAPL.US=10 MSFT.US=2.5

`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.benchmark, "benchmark", "", "Benchmark ticker to compare against (e.g. GSPC.INDX)")
	f.StringVar(&c.start, "s", "", "Start date of the lookback period (YYYY-MM-DD)")
	f.StringVar(&c.end, "d", date.Today().String(), "End date of the lookback period (YYYY-MM-DD)")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := date.Parse(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := date.Parse(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}

	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no positions, expected arguments like AAPL.US=10")
		return subcommands.ExitUsageError
	}
	positions := make([]beta.Position, 0, f.NArg())
	for _, arg := range f.Args() {
		pos, err := parsePosition(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing position %q: %v\n", arg, err)
			return subcommands.ExitUsageError
		}
		positions = append(positions, pos)
	}

	req := beta.Request{
		Benchmark: strings.ToUpper(c.benchmark),
		Range:     date.NewRange(start, end),
		Positions: positions,
	}

	provider, err := Provider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := beta.Compute(provider, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}

// parsePosition parses a "TICKER=SHARES" argument. The ticker is normalized
// to uppercase; shares must be a positive real number.
func parsePosition(arg string) (beta.Position, error) {
	ticker, shares, ok := strings.Cut(arg, "=")
	if !ok {
		return beta.Position{}, fmt.Errorf("want TICKER=SHARES")
	}
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return beta.Position{}, fmt.Errorf("empty ticker")
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(shares), 64)
	if err != nil {
		return beta.Position{}, fmt.Errorf("invalid share count %q", shares)
	}
	if n <= 0 {
		return beta.Position{}, fmt.Errorf("share count must be greater than 0")
	}
	return beta.Position{Ticker: ticker, Shares: n}, nil
}
