package basis_test

import (
	"fmt"

	"github.com/cwbudde/algo-haar/haar/basis"
)

func ExampleBuild() {
	h, err := basis.Build(2)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.4f %.4f\n", h.At(0, 0), h.At(0, 1))
	fmt.Printf("%.4f %.4f\n", h.At(1, 0), h.At(1, 1))

	// Output:
	// 0.7071 0.7071
	// 0.7071 -0.7071
}

func ExampleMatrix_IsOrthonormal() {
	h, err := basis.Get(64)
	if err != nil {
		panic(err)
	}

	fmt.Println(h.IsOrthonormal(1e-9))

	// Output:
	// true
}
