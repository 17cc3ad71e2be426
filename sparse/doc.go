// SPDX-License-Identifier: MIT

// Package sparse provides the compressed-sparse-row (CSR) operator used to
// hold a discretised Hamiltonian.
//
// The operator is real-valued and acts on complex field.State vectors:
//
//	y_re[r] = Σ val·x_re[col],   y_im[r] = Σ val·x_im[col]
//
// over the stored entries of row r. It is deliberately minimal (construction
// from triplets, matrix–vector product, a legacy Taylor exponential) and is not
// a general sparse-matrix library.
//
// Construction policy (New):
//   - triplets with row ∉ [0,m) or col ∉ [0,n) are dropped silently;
//   - triplets with value 0 are dropped silently;
//   - the rest are sorted by (row, col) and packed; duplicate (row, col)
//     pairs are NOT merged: each is stored as its own entry and their
//     contributions add up during MulVec.
//
// Parallelism: WithWorkers(k) splits the row loop into k contiguous chunks run
// on an errgroup. Every row is still summed by one goroutine in storage order,
// so parallel and serial products are bit-identical.
//
// A CSR is immutable after construction and safe for concurrent MulVec calls.
package sparse
