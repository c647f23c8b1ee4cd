// Package wfcviz renders a recorded wfc.Run trace as a self-contained HTML
// report, the way JonasLazardGIT/SPRUCE's Additionnals/plot_pacs_sweep.go
// turns a run's recorded metrics into an interactive go-echarts page.
package wfcviz

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/mosaicwave/wfc/wfc"
)

// Trace accumulates the Snapshots of a run (spec.md §6 "On progress") for
// later rendering. Call Record from a wfc.Config.OnObserve callback.
type Trace struct {
	snapshots []wfc.Snapshot
}

// NewTrace returns an empty Trace.
func NewTrace() *Trace {
	return &Trace{}
}

// Record appends a snapshot to the trace. Safe to pass directly as
// wfc.Config.OnObserve after binding the receiver.
func (t *Trace) Record(s wfc.Snapshot) {
	t.snapshots = append(t.snapshots, s)
}

// Render writes an HTML page to w with two charts: the total remaining
// domain size summed across all cells after each observation (a proxy for
// global entropy, spec.md §4.E "Entropy"), and, for the final snapshot,
// the distribution of cell domain sizes at quiescence.
func Render(t *Trace, w io.Writer) error {
	page := components.NewPage().SetPageTitle("wfc run trace")

	page.AddCharts(entropyLine(t.snapshots))
	if len(t.snapshots) > 0 {
		page.AddCharts(domainHistogram(t.snapshots[len(t.snapshots)-1]))
	}

	return page.Render(w)
}

// entropyLine plots the sum of per-cell domain sizes against observation
// count. Within one attempt the curve is non-increasing and reaches the
// grid's cell count once every cell has collapsed; a trace that spans a
// restart jumps back up where the next attempt begins.
func entropyLine(snapshots []wfc.Snapshot) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Total remaining domain size"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "observation"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "sum |domain|"}),
	)

	xs := make([]string, len(snapshots))
	ys := make([]opts.LineData, len(snapshots))
	for i, s := range snapshots {
		xs[i] = strconv.Itoa(s.Observations)
		total := 0
		for _, d := range s.DomainSizes {
			total += d
		}
		ys[i] = opts.LineData{Value: total}
	}

	line.SetXAxis(xs).AddSeries("remaining domain", ys)
	return line
}

// domainHistogram buckets a single snapshot's per-cell domain sizes into a
// bar chart, showing how many cells remain ambiguous between how many
// surviving patterns.
func domainHistogram(snap wfc.Snapshot) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Domain size distribution (final snapshot)"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "|domain|"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "cell count"}),
	)

	counts := make(map[int]int)
	maxSize := 0
	for _, d := range snap.DomainSizes {
		counts[d]++
		if d > maxSize {
			maxSize = d
		}
	}

	labels := make([]string, maxSize+1)
	bars := make([]opts.BarData, maxSize+1)
	for d := 0; d <= maxSize; d++ {
		labels[d] = strconv.Itoa(d)
		bars[d] = opts.BarData{Value: counts[d]}
	}

	bar.SetXAxis(labels).AddSeries("cells", bars)
	return bar
}
