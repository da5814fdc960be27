package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matbench/matrix"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m))
}

func TestValidateSquarePair(t *testing.T) {
	a, _ := matrix.NewDense(2)
	b, _ := matrix.NewDense(2)
	c, _ := matrix.NewDense(3)

	require.NoError(t, matrix.ValidateSquarePair(a, b))
	require.ErrorIs(t, matrix.ValidateSquarePair(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquarePair(a, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquarePair(a, c), matrix.ErrDimensionMismatch)

	// nil is reported before the mismatch
	require.ErrorIs(t, matrix.ValidateSquarePair(nil, c), matrix.ErrNilMatrix)
}

func TestValidateProduct(t *testing.T) {
	a, _ := matrix.NewDense(2)
	b, _ := matrix.NewDense(2)
	dst, _ := matrix.NewDense(2)
	wrong, _ := matrix.NewDense(4)

	require.NoError(t, matrix.ValidateProduct(dst, a, b))
	require.ErrorIs(t, matrix.ValidateProduct(nil, a, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateProduct(wrong, a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateProduct(a, a, b), matrix.ErrAliasedOutput)
	require.ErrorIs(t, matrix.ValidateProduct(b, a, b), matrix.ErrAliasedOutput)

	// Squaring with a shared input is fine as long as the output is distinct.
	require.NoError(t, matrix.ValidateProduct(dst, a, a))
}
