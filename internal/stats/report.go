package stats

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
)

// maxReportRows bounds the sample table, longer runs are thinned evenly.
const maxReportRows = 100

// SaveToFile writes the run as a plain text report.
func (r Run) SaveToFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create stats file: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := r.WriteReport(w); err != nil {
		f.Close()
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return f.Close()
}

func (r Run) WriteReport(w io.Writer) error {
	s := r.Summary
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "placement run\t%s .. %s\n", r.Start.Format(time.RFC3339), r.End.Format(time.RFC3339))
	fmt.Fprintf(tw, "duration\t%s\n", r.Duration().Round(time.Millisecond))
	fmt.Fprintf(tw, "samples\t%d every %s\n", s.Samples, s.Interval)
	fmt.Fprintf(tw, "peak heap\t%s\n", humanize.IBytes(s.PeakHeapAlloc))
	fmt.Fprintf(tw, "peak sys\t%s\n", humanize.IBytes(s.PeakSys))
	fmt.Fprintf(tw, "peak rss\t%s\n", humanize.IBytes(s.PeakRSS))
	fmt.Fprintf(tw, "cpu\tpeak %.1f%%, avg %.1f%%\n", s.PeakCPUPercent, s.AvgCPUPercent)
	fmt.Fprintf(tw, "goroutines\tpeak %d\n", s.PeakGoroutines)
	fmt.Fprintf(tw, "gc cycles\t%d\n", s.GCCycles)
	fmt.Fprintf(tw, "labels\tpeak %s in %s tiles\n", humanize.Comma(s.PeakLabels), humanize.Comma(s.PeakKeys))
	if err := tw.Flush(); err != nil {
		return err
	}

	rows := thin(r.Samples, maxReportRows)
	if len(rows) < len(r.Samples) {
		fmt.Fprintf(w, "\nshowing %d of %d samples\n", len(rows), len(r.Samples))
	}
	fmt.Fprintln(w)

	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "elapsed\theap\trss\tcpu %\tgoroutines\tlabels\ttiles\t")
	for _, p := range rows {
		fmt.Fprintf(tw, "%.1fs\t%s\t%s\t%.1f\t%d\t%s\t%s\t\n",
			p.Elapsed.Seconds(),
			humanize.IBytes(p.HeapAlloc),
			humanize.IBytes(p.RSS),
			p.CPUPercent,
			p.Goroutines,
			humanize.Comma(p.Labels),
			humanize.Comma(p.Keys),
		)
	}
	return tw.Flush()
}

// thin picks at most n samples spread evenly over s, keeping the first and the last.
func thin(s []Sample, n int) []Sample {
	if len(s) <= n || n < 2 {
		return s
	}
	out := make([]Sample, 0, n)
	step := float64(len(s)-1) / float64(n-1)
	for i := range n {
		out = append(out, s[int(float64(i)*step+0.5)])
	}
	return out
}
