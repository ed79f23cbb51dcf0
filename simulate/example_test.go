package simulate_test

import (
	"fmt"

	"github.com/katalvlaran/gpmap/seqspace"
	"github.com/katalvlaran/gpmap/simulate"
)

// ExampleNewMountFujiFromLength builds a smooth binary landscape.
func ExampleNewMountFujiFromLength() {
	f, err := simulate.NewMountFujiFromLength(3)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, g := range f.Genotypes() {
		fmt.Println(g, f.Hamming()[i], f.Phenotypes()[i])
	}

	// Output:
	// 000 0 0
	// 001 1 -1
	// 010 1 -1
	// 011 2 -2
	// 100 1 -1
	// 101 2 -2
	// 110 2 -2
	// 111 3 -3
}

// ExampleMountFuji_SetFieldStrength shows the synchronous rebuild.
func ExampleMountFuji_SetFieldStrength() {
	f, _ := simulate.NewMountFuji("AC", seqspace.Alphabets{0: {"A", "T"}, 1: {"C", "G"}})
	fmt.Println(f.Phenotypes())

	_ = f.SetFieldStrength(2)
	fmt.Println(f.Phenotypes())

	// Output:
	// [0 -1 -1 -2]
	// [0 -2 -2 -4]
}

// ExampleMountFuji_SetRoughness draws a reproducible rough landscape and
// resets it back to the smooth field.
func ExampleMountFuji_SetRoughness() {
	f, _ := simulate.NewMountFujiFromLength(2, simulate.WithSeed(1))
	_ = f.SetRoughness(0, 0.1)
	fmt.Println(f.HasRoughness())

	_ = f.SetRoughness()
	fmt.Println(f.HasRoughness(), f.Phenotypes())

	// Output:
	// true
	// false [0 -1 -1 -2]
}
