// Command gridmdp solves grid-world MDPs by dynamic programming.
//
//	gridmdp solve --gamma 0.9 --mode policy --noise stochastic
//	gridmdp solve --grid maze.txt --color
//	gridmdp experiment --config sweep.yaml --csv runs.csv --parquet runs.parquet --html runs.html
//
// Without --grid or a config file the built-in 5×5 reference grid is used.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
