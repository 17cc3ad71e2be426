package propagator_test

import (
	"fmt"

	"github.com/katalvlaran/wavekrylov/field"
	"github.com/katalvlaran/wavekrylov/hamiltonian"
	"github.com/katalvlaran/wavekrylov/propagator"
)

// ExampleInitialize evolves a Gaussian packet and checks the norm survives.
func ExampleInitialize() {
	grid, _ := hamiltonian.NewGrid1D(256)
	h, _ := hamiltonian.Build(make([]float64, grid.Size()), grid, 1)
	seed, _ := field.Gaussian1D(grid.Size(), 64, 0.5, 8)

	ctx, err := propagator.Initialize(seed, h, 20)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	psi, _ := ctx.StateAt(4)
	fmt.Printf("d=%d norm=%.9f\n", ctx.Dimension(), field.Norm(psi))
	// Output:
	// d=20 norm=1.000000000
}

// ExampleFindEigenstate recovers the ground state of an open chain, whose
// energy is 1 − cos(π/(N+1)).
func ExampleFindEigenstate() {
	grid, _ := hamiltonian.NewGrid1D(16)
	h, _ := hamiltonian.Build(make([]float64, grid.Size()), grid, 1)
	guess, _ := field.Random(grid.Size(), 1)

	es, err := propagator.FindEigenstate(h, guess, 16)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("E0=%.6f\n", es.Energy)
	// Output:
	// E0=0.017027
}
