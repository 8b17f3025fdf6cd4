// Package canvas_test contains unit tests for the Color value type.
package canvas_test

import (
	"testing"

	"github.com/katalvlaran/lvlray/canvas"
	"github.com/stretchr/testify/require"
)

func TestColorArithmetic(t *testing.T) {
	c1 := canvas.NewColor(0.9, 0.6, 0.75)
	c2 := canvas.NewColor(0.7, 0.1, 0.25)

	require.True(t, c1.Add(c2).Equal(canvas.NewColor(1.6, 0.7, 1.0)))
	require.True(t, c1.Sub(c2).Equal(canvas.NewColor(0.2, 0.5, 0.5)))
	require.True(t, canvas.NewColor(0.2, 0.3, 0.4).Scale(2).Equal(canvas.NewColor(0.4, 0.6, 0.8)))
}

func TestColorHadamard(t *testing.T) {
	c1 := canvas.NewColor(1, 0.2, 0.4)
	c2 := canvas.NewColor(0.9, 1, 0.1)

	require.True(t, c1.Mul(c2).Equal(canvas.NewColor(0.9, 0.2, 0.04)))
}

func TestColorEqual_Tolerance(t *testing.T) {
	c := canvas.NewColor(0.5, 0.5, 0.5)

	require.True(t, c.Equal(canvas.NewColor(0.5+canvas.Epsilon/2, 0.5, 0.5)))
	require.False(t, c.Equal(canvas.NewColor(0.5+canvas.Epsilon*10, 0.5, 0.5)))
}

func TestRGB8_ClampsAndScales(t *testing.T) {
	// in-range components scale and round
	r, g, b := canvas.NewColor(0, 0.5, 1).RGB8()
	require.Equal(t, uint8(0), r)
	require.Equal(t, uint8(128), g)
	require.Equal(t, uint8(255), b)

	// out-of-range components clamp, never wrap
	r, g, b = canvas.NewColor(1.5, -0.5, 2).RGB8()
	require.Equal(t, uint8(255), r)
	require.Equal(t, uint8(0), g)
	require.Equal(t, uint8(255), b)
}

func TestNRGBA_Opaque(t *testing.T) {
	n := canvas.NewColor(1, 0, 0).NRGBA()
	require.Equal(t, uint8(255), n.R)
	require.Equal(t, uint8(0), n.G)
	require.Equal(t, uint8(0), n.B)
	require.Equal(t, uint8(255), n.A)
}
