// Package matrix_test contains unit tests for the arithmetic kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlray/matrix"
	"github.com/katalvlaran/lvlray/tuple"
	"github.com/stretchr/testify/require"
)

// ---------- Add / Sub ----------

func TestAddSub_Entrywise(t *testing.T) {
	a := MustData(t, 2, 2, []float64{1, 1, 1, 1})
	b := MustData(t, 2, 2, []float64{1, 1, 1, 1})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(sum, MustData(t, 2, 2, []float64{2, 2, 2, 2})))

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(diff, MustData(t, 2, 2, []float64{0, 0, 0, 0})))
}

func TestAddSub_DimensionMismatch(t *testing.T) {
	a := MustDense(t, 2, 2)
	b := MustDense(t, 3, 2)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAddSub_NilOperand(t *testing.T) {
	a := MustDense(t, 2, 2)

	_, err := matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Sub(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAdd_FallbackMatchesFastPath(t *testing.T) {
	a := MustData(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := MustData(t, 2, 3, []float64{6, 5, 4, 3, 2, 1})

	fast, err := matrix.Add(a, b)
	require.NoError(t, err)
	slow, err := matrix.Add(hide{a}, b)
	require.NoError(t, err)
	require.True(t, matrix.EqualWithin(fast, slow, 0))
}

// ---------- Scale ----------

func TestScale(t *testing.T) {
	m := MustData(t, 2, 2, []float64{1, 1, 1, 1})

	scaled, err := matrix.Scale(m, 4)
	require.NoError(t, err)
	require.True(t, matrix.Equal(scaled, MustData(t, 2, 2, []float64{4, 4, 4, 4})))

	// zero scalar yields an explicit zero matrix, no failure mode
	zeroed, err := matrix.Scale(m, 0)
	require.NoError(t, err)
	require.True(t, matrix.Equal(zeroed, MustDense(t, 2, 2)))
}

// ---------- Mul ----------

func TestMul_4x4Fixture(t *testing.T) {
	a := MustData(t, 4, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	})
	b := MustData(t, 4, 4, []float64{
		-2, 1, 2, 3,
		3, 2, 1, -1,
		4, 3, 6, 5,
		1, 2, 7, 8,
	})
	want := MustData(t, 4, 4, []float64{
		20, 22, 50, 48,
		44, 54, 114, 108,
		40, 58, 110, 102,
		16, 26, 46, 42,
	})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(got, want))
}

func TestMul_InnerDimensionRule(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 2, 3) // a.Cols != b.Rows

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// 2×3 · 3×4 is legal and yields 2×4
	c := MustDense(t, 3, 4)
	res, err := matrix.Mul(a, c)
	require.NoError(t, err)
	require.Equal(t, 2, res.Rows())
	require.Equal(t, 4, res.Cols())
}

func TestMul_IdentityNeutral(t *testing.T) {
	a := MustData(t, 4, 4, []float64{
		0, 1, 2, 4,
		1, 2, 4, 8,
		2, 4, 8, 17,
		4, 8, 16, 32,
	})
	ident := MustIdentity(t, 4)

	left, err := matrix.Mul(ident, a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(left, a))

	right, err := matrix.Mul(a, ident)
	require.NoError(t, err)
	require.True(t, matrix.Equal(right, a))
}

func TestMul_QuantizesEntries(t *testing.T) {
	// 1×1 product of thirds: 1/3 * 1 = 0.333333... → stored as 0.33333
	a := MustData(t, 1, 1, []float64{1.0 / 3.0})
	b := MustData(t, 1, 1, []float64{1})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 0.33333, MustAt(t, got, 0, 0))
	require.Equal(t, matrix.Quantize(1.0/3.0), MustAt(t, got, 0, 0))
}

func TestMul_Associativity(t *testing.T) {
	a := MustData(t, 4, 4, []float64{3, -9, 7, 3, 3, -8, 2, -9, -4, 4, 4, 1, -6, 5, -1, 1})
	b := MustData(t, 4, 4, []float64{8, 2, 2, 2, 3, -1, 7, 0, 7, 0, 5, 4, 6, -2, 0, 5})
	c := MustData(t, 4, 4, []float64{1, 2, 3, 4, 2, 4, 4, 2, 8, 6, 4, 1, 0, 0, 0, 1})

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	left, err := matrix.Mul(ab, c)
	require.NoError(t, err)

	bc, err := matrix.Mul(b, c)
	require.NoError(t, err)
	right, err := matrix.Mul(a, bc)
	require.NoError(t, err)

	require.True(t, matrix.Equal(left, right))
}

func TestMul_FallbackMatchesFastPath(t *testing.T) {
	a := MustData(t, 2, 2, []float64{1, 2, 3, 4})
	b := MustData(t, 2, 2, []float64{2, 0, 1, 2})

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	require.True(t, matrix.EqualWithin(fast, slow, 0))
}

// ---------- MulTuple ----------

func TestMulTuple_Fixture(t *testing.T) {
	m := MustData(t, 4, 4, []float64{
		1, 2, 3, 4,
		2, 4, 4, 2,
		8, 6, 4, 1,
		0, 0, 0, 1,
	})

	got, err := matrix.MulTuple(m, tuple.New(1, 2, 3, 1))
	require.NoError(t, err)
	require.True(t, got.Equal(tuple.New(18, 24, 33, 1)))
}

func TestMulTuple_IdentityNeutral(t *testing.T) {
	ident := MustIdentity(t, 4)
	in := tuple.New(1, 2, 3, 4)

	got, err := matrix.MulTuple(ident, in)
	require.NoError(t, err)
	require.True(t, got.Equal(in))
}

func TestMulTuple_ShapeContract(t *testing.T) {
	_, err := matrix.MulTuple(MustDense(t, 3, 3), tuple.New(1, 2, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MulTuple(nil, tuple.New(1, 2, 3, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Transpose ----------

func TestTranspose_Fixture(t *testing.T) {
	m := MustData(t, 4, 4, []float64{
		0, 9, 3, 0,
		9, 8, 0, 8,
		1, 8, 5, 3,
		0, 0, 5, 8,
	})
	want := MustData(t, 4, 4, []float64{
		0, 9, 1, 0,
		9, 8, 8, 0,
		3, 0, 5, 5,
		0, 8, 3, 8,
	})

	got, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.True(t, matrix.Equal(got, want))

	// the diagonal is a fixed point of transposition
	for i := 0; i < 4; i++ {
		require.Equal(t, MustAt(t, m, i, i), MustAt(t, got, i, i))
	}
}

func TestTranspose_Involution(t *testing.T) {
	// transpose(transpose(A)) == A, square and non-square alike
	for _, m := range []*matrix.Dense{
		MustData(t, 2, 2, []float64{1, 2, 3, 4}),
		MustData(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}),
	} {
		once, err := matrix.Transpose(m)
		require.NoError(t, err)
		require.Equal(t, m.Cols(), once.Rows())
		require.Equal(t, m.Rows(), once.Cols())

		twice, err := matrix.Transpose(once)
		require.NoError(t, err)
		require.True(t, matrix.Equal(twice, m))
	}
}

func TestTranspose_IdentityFixedPoint(t *testing.T) {
	ident := MustIdentity(t, 2)
	got, err := matrix.Transpose(ident)
	require.NoError(t, err)
	require.True(t, matrix.Equal(got, ident))
}
