package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/spectral/experiment"
)

// printReport renders the retained spectrum head as a table with the
// selected elbows marked, followed by the selection summary.
func printReport(w io.Writer, cfg experiment.Config, rep experiment.Report) {
	elbowAt := make(map[int]int, len(rep.Elbows))
	for i, e := range rep.Elbows {
		elbowAt[e] = i + 1
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "index\tsingular value\t")
	for i, v := range rep.Values {
		mark := ""
		if n, ok := elbowAt[i+1]; ok {
			mark = fmt.Sprintf("◀ elbow %d", n)
		}
		fmt.Fprintf(tw, "%d\t%.4f\t%s\n", i+1, v, mark)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nspectrum: %d values, %d retained\n", rep.SpectrumSize, len(rep.Values))
	fmt.Fprintf(w, "elbows: %v\n", rep.Elbows)
	fmt.Fprintf(w, "selected dimension: %d (planted blocks: %d)\n", rep.Dimension, cfg.Blocks)
}
