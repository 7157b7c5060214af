package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/beta"
	"github.com/etnz/beta/date"
	"github.com/etnz/beta/renderer"
	"github.com/google/subcommands"
)

// indexOptions is the fixed menu of well-known benchmark indices.
var indexOptions = []struct{ Name, Ticker string }{
	{"S&P 500", "GSPC.INDX"},
	{"Dow Jones Industrial Average", "DJI.INDX"},
	{"NASDAQ Composite", "IXIC.INDX"},
	{"FTSE 100", "FTSE.INDX"},
	{"Nikkei 225", "N225.INDX"},
}

type interactiveCmd struct{}

func (*interactiveCmd) Name() string     { return "interactive" }
func (*interactiveCmd) Synopsis() string { return "compute the portfolio beta from an interactive session" }
func (*interactiveCmd) Usage() string {
	return `pb interactive

  Prompts for the benchmark index, the lookback period and the positions,
  then computes and displays the portfolio beta.
`
}

func (*interactiveCmd) SetFlags(f *flag.FlagSet) {}

func (c *interactiveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	req, err := buildRequest(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
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

// prompter reads validated values from an interactive session, re-prompting
// on invalid input until the user gets it right or the input is closed.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		return "", fmt.Errorf("input closed")
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) date(prompt string) (date.Date, error) {
	for {
		str, err := p.line(prompt)
		if err != nil {
			return date.Date{}, err
		}
		d, err := date.Parse(str)
		if err == nil {
			return d, nil
		}
		fmt.Fprintln(p.out, "Invalid date format. Please use 'YYYY-MM-DD'.")
	}
}

func (p *prompter) shares(prompt string) (float64, error) {
	for {
		str, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseFloat(str, 64)
		if err == nil && n > 0 {
			return n, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Please enter a number greater than 0.")
	}
}

func (p *prompter) count(prompt string) (int, error) {
	for {
		str, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(str)
		if err == nil && n > 0 {
			return n, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Please enter a whole number greater than 0.")
	}
}

// benchmark prompts for the benchmark: a fixed menu of well-known indices
// plus a custom-ticker option.
func (p *prompter) benchmark() (string, error) {
	fmt.Fprintln(p.out, "Select the index to compare with:")
	for i, option := range indexOptions {
		fmt.Fprintf(p.out, "%d: %s (%s)\n", i+1, option.Name, option.Ticker)
	}
	custom := len(indexOptions) + 1
	fmt.Fprintf(p.out, "%d: Custom ticker\n", custom)

	for {
		str, err := p.line(fmt.Sprintf("Enter your choice (1-%d): ", custom))
		if err != nil {
			return "", err
		}
		choice, err := strconv.Atoi(str)
		if err != nil || choice < 1 || choice > custom {
			fmt.Fprintf(p.out, "Invalid choice. Please enter a number between 1 and %d.\n", custom)
			continue
		}
		if choice == custom {
			ticker, err := p.line("Enter the custom ticker to compare with: ")
			if err != nil {
				return "", err
			}
			return strings.ToUpper(ticker), nil
		}
		return indexOptions[choice-1].Ticker, nil
	}
}

// buildRequest runs the interactive session and assembles the request.
// Input acquisition ends here; the computation only ever sees the request.
func buildRequest(in io.Reader, out io.Writer) (beta.Request, error) {
	p := &prompter{in: bufio.NewScanner(in), out: out}

	benchmark, err := p.benchmark()
	if err != nil {
		return beta.Request{}, err
	}

	fmt.Fprintln(out, "\nEnter the lookback period for beta calculation in the format 'YYYY-MM-DD'.")
	start, err := p.date("Start date (e.g., 1990-01-01): ")
	if err != nil {
		return beta.Request{}, err
	}
	end, err := p.date("End date (e.g., 1990-01-01): ")
	if err != nil {
		return beta.Request{}, err
	}

	n, err := p.count("\nEnter the number of stocks in your portfolio: ")
	if err != nil {
		return beta.Request{}, err
	}

	positions := make([]beta.Position, 0, n)
	for i := 0; i < n; i++ {
		ticker, err := p.line("Enter stock ticker: ")
		if err != nil {
			return beta.Request{}, err
		}
		shares, err := p.shares("Enter number of shares owned (can be fractional, greater than 0): ")
		if err != nil {
			return beta.Request{}, err
		}
		positions = append(positions, beta.Position{Ticker: strings.ToUpper(ticker), Shares: shares})
	}

	return beta.Request{
		Benchmark: benchmark,
		Range:     date.NewRange(start, end),
		Positions: positions,
	}, nil
}
