package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/meenmo/zerocurve/curve"
	"github.com/meenmo/zerocurve/utils"
)

func renderCurve(w io.Writer, r curve.Reader, dayCount string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Period", "Years", "Zero %"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, p := range r.Pairs() {
		table.Append([]string{
			strconv.Itoa(p.Period),
			fmt.Sprintf("%.4f", utils.YearFraction(p.Period, dayCount)),
			fmt.Sprintf("%.6f", p.Rate*100.0),
		})
	}
	table.Render()
}

func renderForwards(w io.Writer, base int, periods []int, forwards []float64, dayCount string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Window", "Cont. forward %"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for i, p := range periods {
		table.Append([]string{
			fmt.Sprintf("%gY-%gY", utils.YearFraction(base, dayCount), utils.YearFraction(p, dayCount)),
			fmt.Sprintf("%.6f", forwards[i]*100.0),
		})
	}
	table.Render()
}
