package verify_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matbench/generator"
	"github.com/katalvlaran/matbench/matrix"
	"github.com/katalvlaran/matbench/multiply"
	"github.com/katalvlaran/matbench/verify"
)

func TestProductAcceptsCorrectResults(t *testing.T) {
	a, err := generator.New(24, 1, 100, generator.WithSeed(1))
	require.NoError(t, err)
	b, err := generator.New(24, -100, 100, generator.WithSeed(2))
	require.NoError(t, err)

	for _, s := range multiply.Strategies {
		res, err := multiply.Multiply(a, b, s, multiply.WithThreads(4), multiply.WithTileSize(5))
		require.NoError(t, err)
		require.NoError(t, verify.Product(a, b, res.C), s.String())
	}
}

func TestProductDetectsMismatch(t *testing.T) {
	a, _ := matrix.NewFromRows([][]int64{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows([][]int64{{5, 6}, {7, 8}})
	c, _ := matrix.NewFromRows([][]int64{{19, 22}, {43, 51}})

	err := verify.Product(a, b, c)
	require.ErrorIs(t, err, verify.ErrMismatch)
	require.Contains(t, err.Error(), "C[1][1] = 51, want 50")
}

func TestProductUnverifiable(t *testing.T) {
	a, _ := matrix.NewFromRows([][]int64{{math.MaxInt32, 0}, {0, 1}})
	b, _ := matrix.NewFromRows([][]int64{{math.MaxInt32, 0}, {0, 1}})
	c, _ := matrix.NewDense(2)

	require.ErrorIs(t, verify.Product(a, b, c), verify.ErrUnverifiable)
}

func TestProductOperandErrors(t *testing.T) {
	a, _ := matrix.NewDense(2)
	c3, _ := matrix.NewDense(3)

	require.ErrorIs(t, verify.Product(nil, a, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, verify.Product(a, c3, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, verify.Product(a, a, c3), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, verify.Product(a, a, nil), matrix.ErrNilMatrix)
}
