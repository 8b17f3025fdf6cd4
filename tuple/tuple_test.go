// Package tuple_test contains unit tests for the Tuple value type.
package tuple_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvlray/tuple"
	"github.com/stretchr/testify/require"
)

func TestPointVectorDiscriminant(t *testing.T) {
	p := tuple.Point(4.3, -4.2, 3.1)
	require.True(t, p.IsPoint())
	require.False(t, p.IsVector())
	require.Equal(t, tuple.PointW, p.W)

	v := tuple.Vector(4.3, -4.2, 3.1)
	require.True(t, v.IsVector())
	require.False(t, v.IsPoint())
	require.Equal(t, tuple.VectorW, v.W)
}

func TestDiscriminant_WithinTolerance(t *testing.T) {
	// A w that drifted by less than Epsilon still classifies.
	almostPoint := tuple.New(0, 0, 0, 1.0+tuple.Epsilon/2)
	require.True(t, almostPoint.IsPoint())

	almostVector := tuple.New(0, 0, 0, -tuple.Epsilon/2)
	require.True(t, almostVector.IsVector())

	// A w halfway between the discriminants is neither.
	neither := tuple.New(0, 0, 0, 0.5)
	require.False(t, neither.IsPoint())
	require.False(t, neither.IsVector())
}

func TestEqual_AbsoluteTolerance(t *testing.T) {
	a := tuple.New(1, 2, 3, 1)
	b := tuple.New(1+tuple.Epsilon/2, 2, 3, 1)
	c := tuple.New(1+tuple.Epsilon*10, 2, 3, 1)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestAddSub(t *testing.T) {
	// point + vector = point
	sum := tuple.Point(3, -2, 5).Add(tuple.Vector(-2, 3, 1))
	require.True(t, sum.Equal(tuple.Point(1, 1, 6)))
	require.True(t, sum.IsPoint())

	// point - point = vector
	diff := tuple.Point(3, 2, 1).Sub(tuple.Point(5, 6, 7))
	require.True(t, diff.Equal(tuple.Vector(-2, -4, -6)))
	require.True(t, diff.IsVector())

	// point - vector = point
	back := tuple.Point(3, 2, 1).Sub(tuple.Vector(5, 6, 7))
	require.True(t, back.Equal(tuple.Point(-2, -4, -6)))
	require.True(t, back.IsPoint())
}

func TestNegScaleDiv(t *testing.T) {
	a := tuple.New(1, -2, 3, -4)

	require.True(t, a.Neg().Equal(tuple.New(-1, 2, -3, 4)))
	require.True(t, a.Scale(3.5).Equal(tuple.New(3.5, -7, 10.5, -14)))
	require.True(t, a.Scale(0.5).Equal(tuple.New(0.5, -1, 1.5, -2)))
	require.True(t, a.Div(2).Equal(tuple.New(0.5, -1, 1.5, -2)))
}

func TestMagnitude(t *testing.T) {
	for _, tc := range []struct {
		v    tuple.Tuple
		want float64
	}{
		{tuple.Vector(1, 0, 0), 1},
		{tuple.Vector(0, 1, 0), 1},
		{tuple.Vector(0, 0, 1), 1},
		{tuple.Vector(1, 2, 3), math.Sqrt(14)},
		{tuple.Vector(-1, -2, -3), math.Sqrt(14)},
	} {
		name := fmt.Sprintf("(%g,%g,%g)", tc.v.X, tc.v.Y, tc.v.Z)
		t.Run(name, func(t *testing.T) {
			require.InDelta(t, tc.want, tc.v.Magnitude(), tuple.Epsilon)
		})
	}
}

func TestNormalize(t *testing.T) {
	n, err := tuple.Vector(4, 0, 0).Normalize()
	require.NoError(t, err)
	require.True(t, n.Equal(tuple.Vector(1, 0, 0)))

	n, err = tuple.Vector(1, 2, 3).Normalize()
	require.NoError(t, err)
	require.True(t, n.Equal(tuple.Vector(0.26726, 0.53452, 0.80178)))
	require.InDelta(t, 1.0, n.Magnitude(), tuple.Epsilon)
}

func TestNormalize_ZeroLength(t *testing.T) {
	_, err := tuple.Vector(0, 0, 0).Normalize()
	require.ErrorIs(t, err, tuple.ErrZeroLength)
}

func TestDot(t *testing.T) {
	a := tuple.Vector(1, 2, 3)
	b := tuple.Vector(2, 3, 4)
	require.Equal(t, 20.0, a.Dot(b))
}

func TestCross(t *testing.T) {
	a := tuple.Vector(1, 2, 3)
	b := tuple.Vector(2, 3, 4)

	ab, err := a.Cross(b)
	require.NoError(t, err)
	require.True(t, ab.Equal(tuple.Vector(-1, 2, -1)))

	ba, err := b.Cross(a)
	require.NoError(t, err)
	require.True(t, ba.Equal(tuple.Vector(1, -2, 1)))
}

func TestCross_RejectsPoints(t *testing.T) {
	_, err := tuple.Point(1, 2, 3).Cross(tuple.Vector(2, 3, 4))
	require.ErrorIs(t, err, tuple.ErrNotVector)

	_, err = tuple.Vector(1, 2, 3).Cross(tuple.Point(2, 3, 4))
	require.ErrorIs(t, err, tuple.ErrNotVector)
}
