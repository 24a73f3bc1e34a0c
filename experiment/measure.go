package experiment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/gridmdp/dp"
	"github.com/katalvlaran/gridmdp/mdp"
)

// Stat is a sample mean and standard deviation.
type Stat struct {
	Mean   float64
	StdDev float64
}

// Summary aggregates repeated solves of one configuration.
type Summary struct {
	Mode           dp.Mode
	Trials         int
	Iterations     Stat
	EvalIterations Stat
	// Runtime is in seconds.
	Runtime Stat
	// Values holds one Stat per state.
	Values []Stat
}

// MaxValueStdDev returns the largest per-state value standard deviation.
// Solves are deterministic, so it should stay at rounding noise.
func (s Summary) MaxValueStdDev() float64 {
	var worst float64
	for _, v := range s.Values {
		worst = max(worst, v.StdDev)
	}
	return worst
}

type trial struct {
	res     dp.Result
	runtime time.Duration
}

// Measure solves m trials times on at most workers goroutines and summarises
// the results. The first solver error cancels the remaining trials.
//
// Complexity: trials × one solve; O(trials × S) memory for the value samples.
func Measure(ctx context.Context, m *mdp.Model, mode dp.Mode, trials, workers int, opts ...dp.Option) (Summary, error) {
	if trials < 1 || workers < 1 {
		return Summary{}, fmt.Errorf("%w: trials and workers must be >= 1, got %d and %d", ErrInvalidConfig, trials, workers)
	}
	workers = min(workers, trials)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
		results  = make([]trial, trials)
		jobs     = make(chan int)
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				start := time.Now()
				res, err := dp.Solve(m, mode, opts...)
				if err != nil {
					once.Do(func() {
						firstErr = err
						cancel()
					})
					continue
				}
				results[i] = trial{res: res, runtime: time.Since(start)}
			}
		}()
	}

feed:
	for i := 0; i < trials; i++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return Summary{}, firstErr
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	return summarize(mode, results), nil
}

func summarize(mode dp.Mode, results []trial) Summary {
	n := len(results)
	iters := make([]float64, n)
	evals := make([]float64, n)
	runtimes := make([]float64, n)
	for i, t := range results {
		iters[i] = float64(t.res.Iterations)
		evals[i] = float64(t.res.EvalIterations)
		runtimes[i] = t.runtime.Seconds()
	}

	states := len(results[0].res.Values)
	values := make([]Stat, states)
	column := make([]float64, n)
	for s := 0; s < states; s++ {
		for i, t := range results {
			column[i] = t.res.Values[s]
		}
		values[s] = describe(column)
	}

	return Summary{
		Mode:           mode,
		Trials:         n,
		Iterations:     describe(iters),
		EvalIterations: describe(evals),
		Runtime:        describe(runtimes),
		Values:         values,
	}
}

// describe returns the mean and unbiased standard deviation of xs.
// A single sample has a standard deviation of 0.
func describe(xs []float64) Stat {
	if len(xs) == 1 {
		return Stat{Mean: xs[0]}
	}
	mean, std := stat.MeanStdDev(xs, nil)
	return Stat{Mean: mean, StdDev: std}
}
