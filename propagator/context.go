// SPDX-License-Identifier: MIT

package propagator

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/wavekrylov/eigen"
	"github.com/katalvlaran/wavekrylov/field"
	"github.com/katalvlaran/wavekrylov/lanczos"
)

// Context is everything StateAt needs: the seed, its Krylov basis Q and the
// eigendecomposition T = S·Λ·Sᵀ of the projected operator.
type Context struct {
	seed      field.State
	seedNorm  float64
	op        lanczos.Operator
	requested int
	truncated bool
	basis     lanczos.Basis
	tri       lanczos.Tridiagonal
	dec       *eigen.Decomposition
	opts      []Option
}

// Initialize reduces op on the Krylov space of seed (dimension d, or less
// after breakdown) and diagonalises the result.
//
// The seed is copied. Errors from lanczos.Reduce (ErrInvalidDimension,
// ErrZeroSeed, ...) and from the solver are returned wrapped.
// Complexity: O(d·nnz + d²·N + d³).
func Initialize(seed field.State, op lanczos.Operator, d int, opts ...Option) (*Context, error) {
	o := gatherOptions(opts)

	res, err := lanczos.Reduce(op, seed, d, o.reduceOptions()...)
	if err != nil {
		return nil, fmt.Errorf("Initialize: %w", err)
	}
	dec, err := o.solver.Tridiagonal(res.Tridiagonal.Alphas, res.Tridiagonal.Off())
	if err != nil {
		return nil, fmt.Errorf("Initialize: %w", err)
	}

	o.logger.Debug("propagator context initialised",
		zap.Int("n", seed.Len()),
		zap.Int("requested", d),
		zap.Int("effective", res.Effective),
		zap.Bool("truncated", res.Truncated),
		zap.Float64("lowest", dec.Values[0]),
		zap.Float64("highest", dec.Values[len(dec.Values)-1]),
	)

	return &Context{
		seed:      seed.Clone(),
		seedNorm:  field.Norm(seed),
		op:        op,
		requested: d,
		truncated: res.Truncated,
		basis:     res.Basis,
		tri:       res.Tridiagonal,
		dec:       dec,
		opts:      append([]Option(nil), opts...),
	}, nil
}

// Seed returns a copy of the state the context was built from.
func (c *Context) Seed() field.State { return c.seed.Clone() }

// Basis returns the Krylov basis. The slice is shared; do not modify it.
func (c *Context) Basis() lanczos.Basis { return c.basis }

// Tridiagonal returns the projected operator.
func (c *Context) Tridiagonal() lanczos.Tridiagonal { return c.tri }

// Energies returns a copy of the ascending Ritz values.
func (c *Context) Energies() []float64 { return append([]float64(nil), c.dec.Values...) }

// Dimension returns the effective Krylov dimension.
func (c *Context) Dimension() int { return len(c.basis) }

// Requested returns the dimension asked for at Initialize.
func (c *Context) Requested() int { return c.requested }

// Truncated reports whether Lanczos breakdown shrank the basis.
func (c *Context) Truncated() bool { return c.truncated }

// Operator returns the operator the context was built on.
func (c *Context) Operator() lanczos.Operator { return c.op }

// Energy returns ⟨x|H|x⟩/‖x‖² for the seed x, computed from the spectral
// weights as Σ_k S[0][k]²·λ_k.
func (c *Context) Energy() float64 {
	var e, w float64
	for k, lambda := range c.dec.Values {
		w = c.dec.Vectors.At(0, k)
		e += w * w * lambda
	}

	return e
}

// StateAt returns the seed evolved to time t:
//
//	c_k = S[0][k]·(cos λ_k t − i·sin λ_k t)
//	y   = S·c
//	Y   = ‖x‖·Σ_i y_i·q_i
//
// Returns lanczos.ErrDegenerateBasis if the result is not finite.
// Complexity: O(d² + d·N).
func (c *Context) StateAt(t float64) (field.State, error) {
	cr, ci := c.coefficients(t)
	n := c.seed.Len()
	out := field.State{Re: make([]float64, n), Im: make([]float64, n)}
	if err := c.accumulate(out, cr, ci); err != nil {
		return field.State{}, fmt.Errorf("StateAt: %w", err)
	}
	if !field.IsFinite(out) {
		return field.State{}, fmt.Errorf("StateAt: t=%g: non-finite state: %w", t, lanczos.ErrDegenerateBasis)
	}

	return out, nil
}

// StateAtInto writes the state at time t into dst, reusing its buffers.
// dst must have the seed's length. On error dst is left zeroed.
func (c *Context) StateAtInto(dst field.State, t float64) error {
	if dst.Len() != c.seed.Len() || len(dst.Im) != c.seed.Len() {
		return fmt.Errorf("StateAtInto: %d vs %d: %w", dst.Len(), c.seed.Len(), field.ErrLengthMismatch)
	}
	cr, ci := c.coefficients(t)
	dst.Zero()
	if err := c.accumulate(dst, cr, ci); err != nil {
		return fmt.Errorf("StateAtInto: %w", err)
	}
	if !field.IsFinite(dst) {
		dst.Zero()
		return fmt.Errorf("StateAtInto: t=%g: non-finite state: %w", t, lanczos.ErrDegenerateBasis)
	}

	return nil
}

// coefficients returns c_k = S[0][k]·(cos λ_k t − i sin λ_k t).
func (c *Context) coefficients(t float64) (cr, ci []float64) {
	d := len(c.basis)
	cr = make([]float64, d)
	ci = make([]float64, d)
	var s0, sin, cos float64
	for k, lambda := range c.dec.Values {
		s0 = c.dec.Vectors.At(0, k)
		sin, cos = math.Sincos(lambda * t)
		cr[k] = s0 * cos
		ci[k] = -s0 * sin
	}

	return cr, ci
}

// accumulate adds ‖seed‖·Σ_i (S·c)_i·Q_i to out.
func (c *Context) accumulate(out field.State, cr, ci []float64) error {
	d := len(c.basis)
	var yr, yi, sik float64
	for i := 0; i < d; i++ {
		yr, yi = 0, 0
		for k := 0; k < d; k++ {
			sik = c.dec.Vectors.At(i, k)
			yr += sik * cr[k]
			yi += sik * ci[k]
		}
		if err := field.AddScaled(out, c.seedNorm*yr, c.seedNorm*yi, c.basis[i]); err != nil {
			return err
		}
	}

	return nil
}

// Refresh builds a new context around newSeed with the operator, requested
// dimension and options of c. c itself is unchanged.
func (c *Context) Refresh(newSeed field.State) (*Context, error) {
	next, err := Initialize(newSeed, c.op, c.requested, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("Refresh: %w", err)
	}

	return next, nil
}

// StateAt is the free-function form of (*Context).StateAt.
func StateAt(c *Context, t float64) (field.State, error) { return c.StateAt(t) }

// Refresh is the free-function form of (*Context).Refresh.
func Refresh(c *Context, newSeed field.State) (*Context, error) { return c.Refresh(newSeed) }
