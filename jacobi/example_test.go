package jacobi_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsolve/jacobi"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolveRows
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	4x +  y +  z = 6
//	 x + 3y +  z = 5
//	 x +  y + 5z = 7
//
// The matrix is strictly diagonally dominant, so Jacobi converges to (1, 1, 1).
func ExampleSolveRows() {
	a := [][]float64{{4, 1, 1}, {1, 3, 1}, {1, 1, 5}}
	res, err := jacobi.SolveRows(a, []float64{6, 5, 7}, []float64{0, 0, 0}, 100, 1e-6)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	x := res.Solution()
	fmt.Println("converged:", res.Converged)
	fmt.Printf("x=%.4f y=%.4f z=%.4f\n", x[0], x[1], x[2])
	// Output:
	// converged: true
	// x=1.0000 y=1.0000 z=1.0000
}

// ExampleTrace_Rows prints the iteration table for the first two steps.
func ExampleTrace_Rows() {
	a := [][]float64{{4, 1, 1}, {1, 3, 1}, {1, 1, 5}}
	res, _ := jacobi.SolveRows(a, []float64{6, 5, 7}, []float64{0, 0, 0}, 2, 1e-6)
	for _, row := range res.Trace.Rows() {
		if row.MaxError == nil {
			fmt.Printf("%d  %.4f  -\n", row.Iteration, row.Values)
			continue
		}
		fmt.Printf("%d  %.4f  %.4f\n", row.Iteration, row.Values, *row.MaxError)
	}
	// Output:
	// 0  [0.0000 0.0000 0.0000]  -
	// 1  [1.5000 1.6667 1.4000]  1.6667
	// 2  [0.7333 0.7000 0.7667]  0.9667
}

// ExampleSolve_identity shows the one-step solution of an identity system.
func ExampleSolve_identity() {
	a := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	res, _ := jacobi.SolveRows(a, []float64{2, -1, 5}, []float64{0, 0, 0}, 25, 1e-6)
	fmt.Println(res.Solution(), res.Converged, res.IterationsRun)
	// Output:
	// [2 -1 5] true 2
}

// ExampleSolve_zeroDiagonal shows the error returned for A[1][1] = 0.
func ExampleSolve_zeroDiagonal() {
	a := [][]float64{{2, 1, 0}, {1, 0, 1}, {0, 1, 2}}
	_, err := jacobi.SolveRows(a, []float64{1, 1, 1}, []float64{0, 0, 0}, 25, 1e-6)

	var sde *jacobi.SingularDiagonalError
	fmt.Println(errors.As(err, &sde), sde.Index)
	fmt.Println(err)
	// Output:
	// true 1
	// jacobi: zero diagonal coefficient: A[1][1] = 0
}
