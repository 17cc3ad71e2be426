// SPDX-License-Identifier: MIT

// Package refresh drives a propagator.Context frame by frame and rebuilds
// it before the Krylov approximation goes stale.
//
// A Context built at seed x is accurate for |t| up to roughly d/‖H‖. The
// Stepper evaluates frames at local times dt, 2·dt, … relative to the
// current context and, once the Policy says the context is stale, makes the
// latest frame the new seed. Two budgets are supported, matching the two
// animation drivers this package replaces: a frame count (1D, 20 frames)
// and an elapsed simulated time (2D, t > 8).
//
// A Stepper is not safe for concurrent use.
package refresh
