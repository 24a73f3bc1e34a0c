package experiment_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/gridmdp/dp"
	"github.com/katalvlaran/gridmdp/experiment"
	"github.com/katalvlaran/gridmdp/mdp"
)

// BenchmarkMeasure compares worker counts for 16 stochastic policy-iteration trials.
func BenchmarkMeasure(b *testing.B) {
	m, err := experiment.Default().BuildModel(mdp.KindStochastic)
	if err != nil {
		b.Fatal(err)
	}
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := experiment.Measure(context.Background(), m, dp.ModePolicy, 16, workers, dp.WithGamma(0.9)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
