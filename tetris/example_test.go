package tetris_test

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

// ExampleShape_Matrix prints the I piece after one clockwise quarter turn.
func ExampleShape_Matrix() {
	m := tetris.ShapeI.Matrix(1)
	for _, row := range m {
		line := ""
		for _, filled := range row {
			if filled {
				line += "#"
			} else {
				line += "."
			}
		}
		fmt.Println(line)
	}

	// Output:
	// ..#.
	// ..#.
	// ..#.
	// ..#.
}

// ExampleScoreForClear shows the reward for one to four rows cleared at once.
func ExampleScoreForClear() {
	for n := 1; n <= tetris.MaxClear; n++ {
		fmt.Printf("%d rows: %d\n", n, tetris.ScoreForClear(n))
	}

	// Output:
	// 1 rows: 100
	// 2 rows: 400
	// 3 rows: 900
	// 4 rows: 1600
}

// ExampleConfig_FallInterval walks the arcade speed curve down to its floor.
func ExampleConfig_FallInterval() {
	cfg := tetris.ArcadeConfig()
	for _, level := range []int{1, 2, 5, 10, 20} {
		fmt.Printf("level %d: %s\n", level, cfg.FallInterval(level))
	}

	// Output:
	// level 1: 500ms
	// level 2: 450ms
	// level 5: 300ms
	// level 10: 50ms
	// level 20: 50ms
}
