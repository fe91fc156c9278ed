package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/PawelGambus/rcn-wroclaw/internal/rcn"
)

// renderReport writes the record count, the transaction table and, when any
// record carries a derived price, the price-per-m2 statistics block.
func renderReport(out io.Writer, txs []rcn.Transaction) {
	p := message.NewPrinter(language.English)

	_, _ = fmt.Fprintf(out, "Retrieved %d transactions\n\n", len(txs))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DATE\tPRICE_PLN\tAREA_M2\tPRICE_PER_M2\tROOMS\tFLOOR\tUSE_TYPE\tMARKET_TYPE\tSELLER_TYPE")
	for _, t := range txs {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			textCell(t.Date),
			intCell(p, t.PricePLN),
			areaCell(t.AreaM2),
			intCell(p, t.PricePerM2),
			textCell(t.Rooms),
			textCell(t.Floor),
			textCell(t.UseType),
			textCell(t.MarketType),
			textCell(t.SellerType),
		)
	}
	_ = w.Flush()

	sum, ok := rcn.Describe(txs)
	if !ok {
		return
	}

	_, _ = fmt.Fprintln(out, "\n--- Price per m² summary (PLN) ---")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "count\t%d\n", sum.Count)
	_, _ = fmt.Fprintf(w, "mean\t%s\n", p.Sprintf("%.0f", sum.Mean))
	_, _ = fmt.Fprintf(w, "std\t%s\n", p.Sprintf("%.0f", sum.Std))
	_, _ = fmt.Fprintf(w, "min\t%s\n", p.Sprintf("%.0f", sum.Min))
	_, _ = fmt.Fprintf(w, "25%%\t%s\n", p.Sprintf("%.0f", sum.P25))
	_, _ = fmt.Fprintf(w, "50%%\t%s\n", p.Sprintf("%.0f", sum.P50))
	_, _ = fmt.Fprintf(w, "75%%\t%s\n", p.Sprintf("%.0f", sum.P75))
	_, _ = fmt.Fprintf(w, "max\t%s\n", p.Sprintf("%.0f", sum.Max))
	_ = w.Flush()
}

func textCell(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// intCell renders integers with thousands separators; nil stays blank.
func intCell(p *message.Printer, v *int64) string {
	if v == nil {
		return ""
	}
	return p.Sprintf("%d", *v)
}

// areaCell keeps the area's source precision rather than forcing zero
// decimals on it.
func areaCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
