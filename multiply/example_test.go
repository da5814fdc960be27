package multiply_test

import (
	"fmt"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/katalvlaran/matbench/multiply"
)

// ExampleMultiply runs the same product through all three strategies.
func ExampleMultiply() {
	a, _ := matrix.NewFromRows([][]int64{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows([][]int64{{5, 6}, {7, 8}})

	for _, s := range multiply.Strategies {
		res, err := multiply.Multiply(a, b, s, multiply.WithThreads(8), multiply.WithTileSize(1))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%-10s workers=%d %v\n", s, res.Workers, res.C.Rows())
	}

	// Output:
	// sequential workers=1 [[19 22] [43 50]]
	// tiled      workers=1 [[19 22] [43 50]]
	// parallel   workers=2 [[19 22] [43 50]]
}

// ExamplePartition shows the static row split for 10 rows over 4 workers.
func ExamplePartition() {
	for _, r := range multiply.Partition(10, 4) {
		fmt.Printf("[%d,%d) ", r.Lo, r.Hi)
	}
	fmt.Println()

	// Output:
	// [0,3) [3,6) [6,8) [8,10)
}
