package field_test

import (
	"fmt"

	"github.com/katalvlaran/wavekrylov/field"
)

// ExampleGaussian1D builds the default animation packet and reports where it sits.
func ExampleGaussian1D() {
	psi, err := field.Gaussian1D(512, 256, 1.0, 5.0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c, _ := field.Centroid1D(psi)
	fmt.Printf("norm=%.6f centroid=%.3f\n", field.Norm(psi), c)
	// Output:
	// norm=1.000000 centroid=256.000
}

// ExampleDot shows the operand-order convention of the inner product.
func ExampleDot() {
	a, _ := field.FromParts([]float64{1, 0}, []float64{0, 1})
	b, _ := field.FromParts([]float64{0, 1}, []float64{1, 0})
	re, im, _ := field.Dot(a, b)
	fmt.Printf("<a|b> = %.0f%+.0fi\n", re, im)
	// Output:
	// <a|b> = 0+0i
}
