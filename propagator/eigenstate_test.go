package propagator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/wavekrylov/field"
	"github.com/katalvlaran/wavekrylov/propagator"
)

// TestFindEigenstate_GroundState verifies convergence to the lowest level of the free chain.
func TestFindEigenstate_GroundState(t *testing.T) {
	const n, d = 24, 12
	h := chain(t, n, 1, "free")
	guess, err := field.Random(n, 3)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	es, err := propagator.FindEigenstate(h, guess, d,
		propagator.WithIterations(60),
		propagator.WithLogger(zap.New(core)),
	)
	require.NoError(t, err)

	assert.LessOrEqual(t, es.Residual, propagator.DefaultEigenTolerance)
	assert.Less(t, es.Iterations, 60)
	assert.Greater(t, es.Iterations, 1, "d < N needs restarts")
	assert.InDelta(t, freeLevel(n, 1), es.Energy, 1e-10)
	assert.InDelta(t, 1.0, field.Norm(es.State), 1e-12)
	assert.InDelta(t, 1.0, overlap(t, es.State, mode(n, 1)), 1e-8)
	assert.True(t, es.Orthogonality.Orthonormal)
	assert.Len(t, logs.FilterMessage("eigenstate iteration").All(), es.Iterations)
}

// TestFindEigenstate_ExcitedState verifies convergence to the first excited level.
func TestFindEigenstate_ExcitedState(t *testing.T) {
	const n, d = 24, 16
	h := chain(t, n, 1, "free")
	guess, err := field.Random(n, 5)
	require.NoError(t, err)

	es, err := propagator.FindEigenstate(h, guess, d,
		propagator.WithTarget(1),
		propagator.WithIterations(80),
	)
	require.NoError(t, err)
	assert.LessOrEqual(t, es.Residual, propagator.DefaultEigenTolerance)
	assert.InDelta(t, freeLevel(n, 2), es.Energy, 1e-9)
	assert.InDelta(t, 1.0, overlap(t, es.State, mode(n, 2)), 1e-7)
}

// TestFindEigenstate_FixedIterations verifies that a zero tolerance runs every iteration.
func TestFindEigenstate_FixedIterations(t *testing.T) {
	const n = 40
	h := chain(t, n, 1, "harmonic")
	guess, err := field.Random(n, 9)
	require.NoError(t, err)

	es, err := propagator.FindEigenstate(h, guess, 6,
		propagator.WithIterations(3),
		propagator.WithTolerance(0),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, es.Iterations)
	assert.Greater(t, es.Residual, 0.0)
}

// TestFindEigenstate_InvariantSubspace: a two-mode seed solves the target
// exactly on the first pass; restarting from that eigenvector collapses the
// Krylov space, and the first result stands.
func TestFindEigenstate_InvariantSubspace(t *testing.T) {
	const n = 10
	h := chain(t, n, 1, "free")
	guess := mode(n, 2)
	require.NoError(t, field.AddScaled(guess, 0.8, 0, mode(n, 5)))

	es, err := propagator.FindEigenstate(h, guess, 4,
		propagator.WithTarget(1),
		propagator.WithTolerance(0),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, es.Iterations)
	assert.InDelta(t, freeLevel(n, 5), es.Energy, 1e-12)
	assert.Less(t, es.Residual, 1e-10)
}

// TestFindEigenstate_TargetOutOfRange verifies that a target beyond the Krylov space is rejected.
func TestFindEigenstate_TargetOutOfRange(t *testing.T) {
	const n = 8
	h := chain(t, n, 1, "free")

	_, err := propagator.FindEigenstate(h, mode(n, 2), 5, propagator.WithTarget(1))
	assert.ErrorIs(t, err, propagator.ErrTargetOutOfRange)

	_, err = propagator.FindEigenstate(h, point(n, 3), 4, propagator.WithTarget(4))
	assert.ErrorIs(t, err, propagator.ErrTargetOutOfRange)
}

// TestOptions_Panic verifies that invalid option values panic.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { propagator.WithTarget(-1) })
	assert.Panics(t, func() { propagator.WithIterations(0) })
	assert.Panics(t, func() { propagator.WithTolerance(-1e-3) })
	assert.NotPanics(t, func() { propagator.WithTolerance(0) })
}
