// Package renderer turns beta reports into markdown for terminal display.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/beta"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders a beta report to a markdown string.
//
// A single-asset portfolio renders as one line, like the beta of that asset;
// a multi-asset one gets a holdings table and the aggregated figure.
func ReportMarkdown(r *beta.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(r.Holdings) == 1 {
		h := r.Holdings[0]
		doc.H1(fmt.Sprintf("Beta of %s", h.Ticker))
		doc.PlainText(fmt.Sprintf("Compared to %s over %s.", r.Benchmark, r.Range))
		doc.PlainText(fmt.Sprintf("**Beta: %.4f**", h.Beta))
		return doc.String()
	}

	doc.H1("Portfolio Beta")
	doc.PlainText(fmt.Sprintf("Compared to %s over %s.", r.Benchmark, r.Range))

	rows := make([][]string, 0, len(r.Holdings))
	for _, h := range r.Holdings {
		rows = append(rows, []string{
			h.Ticker,
			fmt.Sprintf("%g", h.Shares),
			fmt.Sprintf("%.2f%%", h.Weight*100),
			fmt.Sprintf("%.4f", h.Beta),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Ticker", "Shares", "Weight", "Beta"},
		Rows:   rows,
	})

	doc.PlainText(fmt.Sprintf("**Portfolio Beta: %.4f**", r.PortfolioBeta))
	return doc.String()
}
