package matrix_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlojax/graphon/matrix"
)

func TestDense_SetAtRoundTrip(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestMul_IdentityIsNoop(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(0, 1, 2)
	_ = a.Set(1, 0, 3)
	_ = a.Set(1, 1, 4)

	id, _ := matrix.NewDense(2, 2)
	_ = id.Set(0, 0, 1)
	_ = id.Set(1, 1, 1)

	got, err := matrix.Mul(a, id)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want, _ := a.At(i, j)
			have, _ := got.At(i, j)
			assert.Equal(t, want, have)
		}
	}
}

func TestFloydWarshall_TriangleShortcut(t *testing.T) {
	// 0 -> 1 (1), 1 -> 2 (1), 0 -> 2 (5): shortest 0->2 should become 2.
	m, _ := matrix.NewDense(3, 3)
	_ = m.Set(0, 1, 1)
	_ = m.Set(1, 2, 1)
	_ = m.Set(0, 2, 5)

	require.NoError(t, matrix.InitDistances(m))
	require.NoError(t, matrix.FloydWarshall(m))

	got, err := m.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestFloydWarshall_UnreachableStaysInfinite(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	require.NoError(t, matrix.InitDistances(m))
	require.NoError(t, matrix.FloydWarshall(m))

	got, err := m.At(0, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))
}

func TestLocalMultiplier_HonorsCancellation(t *testing.T) {
	a, _ := matrix.NewDense(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := matrix.LocalMultiplier{}.Multiply(ctx, a, a)
	assert.Error(t, err)
}
