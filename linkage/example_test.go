package linkage_test

import (
	"fmt"

	"github.com/katalvlaran/fourbar/linkage"
)

// ExampleIsValid checks the two worked examples: a crank-rocker that can
// turn fully and a long-ground set that cannot.
func ExampleIsValid() {
	fmt.Println(linkage.IsValid(2.7, 1, 2.4, 3))
	fmt.Println(linkage.IsValid(10, 1, 1, 1))
	// Output:
	// true
	// false
}

// ExampleClassify prints the Grashof class for the crank-rocker example.
func ExampleClassify() {
	ls, err := linkage.New(2.7, 1, 2.4, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(linkage.Classify(ls))
	// Output:
	// crank-rocker
}
