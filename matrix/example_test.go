package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/matbench/matrix"
)

// ExampleNewFromRows builds a small matrix from a literal and reads it back.
func ExampleNewFromRows() {
	m, err := matrix.NewFromRows([][]int64{
		{1, 2},
		{3, 4},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := m.At(1, 0)
	fmt.Println("dim:", m.Dim())
	fmt.Println("A[1][0] =", v)
	fmt.Println("trace:", m.Trace())
	fmt.Print(m)

	// Output:
	// dim: 2
	// A[1][0] = 3
	// trace: 5
	// [1, 2]
	// [3, 4]
}
