package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"text/tabwriter"

	"github.com/ja7ad/utci/pkg/stress"
	"github.com/ja7ad/utci/pkg/thermal"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printTableHeader(tw *tabwriter.Writer) {
	fmt.Fprintln(tw, "TA (°C)\tRH (%)\tTMRT (°C)\tVA (m/s)\tVP (hPa)\tUTCI (°C)\tSTRESS")
	fmt.Fprintln(tw, "-------\t------\t---------\t--------\t--------\t---------\t------")
}

func printTableRow(tw *tabwriter.Writer, r row) {
	mark := ""
	if !r.InDomain {
		mark = " *"
	}
	fmt.Fprintf(tw, "%.1f\t%.0f\t%.1f\t%.1f\t%.2f\t%.1f\t%s%s\n",
		r.TA, r.RH, r.TMRT, r.VA, r.VP, r.UTCI, r.Stress, mark)
}

type stressCount struct {
	Stress string
	Count  int
}

func stressCounts(sum thermal.Summary) []stressCount {
	var out []stressCount
	for _, c := range append(stress.Categories(), stress.Unknown) {
		if n := sum.ByStress[c]; n > 0 {
			out = append(out, stressCount{Stress: c.String(), Count: n})
		}
	}
	return out
}

func printSummary(w io.Writer, sum thermal.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "utci summary (over %d rows):\n", sum.Count)
	fmt.Fprintf(w, "- mean:          %.2f °C\n", sum.Mean)
	fmt.Fprintf(w, "- stddev:        %.2f °C\n", sum.StdDev)
	fmt.Fprintf(w, "- min / max:     %.2f / %.2f °C\n", sum.Min, sum.Max)
	fmt.Fprintf(w, "- out of domain: %d\n", sum.OutOfDomain)
	for _, sc := range stressCounts(sum) {
		fmt.Fprintf(w, "- %-24s %d\n", sc.Stress+":", sc.Count)
	}
	fmt.Fprintln(w)
}

func writeHTML(w io.Writer, rows []row, sum thermal.Summary) error {
	type view struct {
		Rows   []row
		Sum    thermal.Summary
		Counts []stressCount
	}

	var buf bytes.Buffer
	data := view{Rows: rows, Sum: sum, Counts: stressCounts(sum)}
	if err := tpl.Execute(&buf, data); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var tpl = template.Must(template.New("rep").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>UTCI Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:last-child,td:last-child{text-align:left}
ul{margin:6px 0 14px;padding-left:20px}
.small{color:#555}
.ood{background:#fff4e5}
</style>

<h1>UTCI Report</h1>

<p class="small">
Rows: {{.Sum.Count}} &nbsp;|&nbsp;
Mean UTCI: {{printf "%.2f" .Sum.Mean}} °C &nbsp;|&nbsp;
Out of domain: {{.Sum.OutOfDomain}}
</p>

<h2>Summary</h2>
<ul>
<li>Mean: {{printf "%.2f" .Sum.Mean}} °C</li>
<li>Std. deviation: {{printf "%.2f" .Sum.StdDev}} °C</li>
<li>Min: {{printf "%.2f" .Sum.Min}} °C</li>
<li>Max: {{printf "%.2f" .Sum.Max}} °C</li>
{{range .Counts}}<li>{{.Stress}}: {{.Count}}</li>
{{end}}</ul>

<h2>Per-row</h2>
<table>
<thead>
<tr>
<th>Ta (°C)</th><th>RH (%)</th><th>Tmrt (°C)</th><th>va (m/s)</th><th>vp (hPa)</th><th>UTCI (°C)</th><th>stress</th>
</tr>
</thead>
<tbody>
{{range .Rows}}
<tr{{if not .InDomain}} class="ood"{{end}}>
<td>{{printf "%.1f" .TA}}</td>
<td>{{printf "%.0f" .RH}}</td>
<td>{{printf "%.1f" .TMRT}}</td>
<td>{{printf "%.1f" .VA}}</td>
<td>{{printf "%.2f" .VP}}</td>
<td>{{printf "%.1f" .UTCI}}</td>
<td>{{.Stress}}</td>
</tr>
{{end}}
</tbody>
</table>
</html>`))
