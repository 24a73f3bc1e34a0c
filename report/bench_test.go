package report_test

import (
	"io"
	"testing"

	"github.com/katalvlaran/gridmdp/report"
)

// BenchmarkWriteText measures the uncoloured and coloured text writers.
func BenchmarkWriteText(b *testing.B) {
	run := sampleRun(b)
	for _, color := range []bool{false, true} {
		name := "plain"
		if color {
			name = "color"
		}
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := report.WriteText(io.Discard, run, report.WithColor(color)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
