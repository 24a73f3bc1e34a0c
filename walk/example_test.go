package walk_test

import (
	"fmt"

	"github.com/katalvlaran/gridmdp/dp"
	"github.com/katalvlaran/gridmdp/gridworld"
	"github.com/katalvlaran/gridmdp/mdp"
	"github.com/katalvlaran/gridmdp/walk"
)

// ExampleExtract solves a small grid and walks the optimal policy.
func ExampleExtract() {
	g, _ := gridworld.Parse([]string{
		"S X G",
		"_ _ _",
	})
	m, _ := mdp.Build(g, mdp.Deterministic())
	res, _ := dp.ValueIteration(m, dp.WithGamma(0.9))

	p, _ := walk.Extract(m, res.Policy)
	fmt.Println(p)
	fmt.Println("goal:", p.ReachedGoal, "cells:", p.Len())

	// Output:
	// (0,0) (1,0) (1,1) (1,2) (0,2)
	// goal: true cells: 5
}
