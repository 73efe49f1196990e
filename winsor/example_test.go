
package winsor_test

import (
	"fmt"

	"github.com/katalvlaran/prepkit/matrix"
	"github.com/katalvlaran/prepkit/winsor"
)

// ExampleWinsorizer_Fit learns interquartile bounds on training data and
// clips unseen rows with them.
func ExampleWinsorizer_Fit() {
	train, _ := matrix.NewFromRows([][]float64{{1, 100}, {2, 200}, {3, 300}, {4, 400}})
	f, err := winsor.New(winsor.WithQuantiles(0.25, 0.75)).Fit(train)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("lower", f.Lower())
	fmt.Println("upper", f.Upper())

	test, _ := matrix.NewFromRows([][]float64{{0, 1000}, {2.5, 250}})
	out, _ := f.Transform(test)
	fmt.Print(out)
	// Output:
	// lower [1.75 175]
	// upper [3.25 325]
	// [1.75, 325]
	// [2.5, 250]
}
