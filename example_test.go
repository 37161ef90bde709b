package linsys_test

import (
	"fmt"

	"linsys"
	"linsys/hyperplane"
)

func ExampleSystem_ComputeTriangularForm() {
	s, err := linsys.New([]hyperplane.Plane{
		hyperplane.MustParse("1 1 1 = 1"),
		hyperplane.MustParse("0 1 0 = 2"),
		hyperplane.MustParse("1 1 -1 = 3"),
		hyperplane.MustParse("1 0 -2 = 2"),
	})
	if err != nil {
		panic(err)
	}
	tf := s.ComputeTriangularForm()
	fmt.Println(tf)
	fmt.Println(tf.IndicesOfFirstNonzeroTerms())
	// Output:
	// Linear System:
	// Equation 1: x_1 + x_2 + x_3 = 1
	// Equation 2: x_2 = 2
	// Equation 3: -2x_3 = 2
	// Equation 4: 0 = 0
	// [0 1 2 -1]
}

func ExampleSystem_Solve() {
	s := linsys.MustNew([]hyperplane.Plane{
		hyperplane.MustParse("1 1 1 = 1"),
		hyperplane.MustParse("0 1 0 = 2"),
		hyperplane.MustParse("1 1 -1 = 3"),
	})
	x, err := s.Solve()
	fmt.Println(x, err)
	fmt.Println(s.Classify())
	// Output:
	// Vector: (0, 2, -1) <nil>
	// Unique solution
}
