// File: gridworld/example_test.go
package gridworld_test

import (
	"fmt"

	"github.com/katalvlaran/gridmdp/gridworld"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Parse
////////////////////////////////////////////////////////////////////////////////

// ExampleParse demonstrates how obstacles are skipped when numbering states.
// Scenario:
//
//   - 2×3 grid with one obstacle in the middle of the top row.
//   - States are numbered row-major: (0,0)=0, (0,2)=1, (1,0)=2, ...
func ExampleParse() {
	g, _ := gridworld.Parse([]string{
		"S X _",
		"_ _ G",
	})

	fmt.Println("states:", g.NumStates())
	for i, c := range g.States() {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%d:%v", i, c)
	}
	fmt.Println()
	fmt.Println("start:", g.Start(), "goals:", g.Goals())

	// Output:
	// states: 5
	// 0:(0,0) 1:(0,2) 2:(1,0) 3:(1,1) 4:(1,2)
	// start: (0,0) goals: [(1,2)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Distances
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_GoalDistance shows the BFS step count from start to goal.
func ExampleGrid_GoalDistance() {
	g, _ := gridworld.Parse([]string{
		"S _ _",
		"X X _",
		"G _ _",
	})
	fmt.Println(g.GoalDistance())

	// Output:
	// 6
}
