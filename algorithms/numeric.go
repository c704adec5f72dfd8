package algorithms

import "golang.org/x/exp/constraints"

// Number is any type Sum can add: integers, floats and complex numbers.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// LinearSearch returns the index of the first element equal to target and
// true, or -1 and false when no element matches.
//
// Time complexity: O(n)
func LinearSearch[T comparable](arr []T, target T) (int, bool) {
	for i, v := range arr {
		if v == target {
			return i, true
		}
	}

	return -1, false
}

// Sum adds every element of arr, starting from zero.
func Sum[T Number](arr []T) T {
	var zero T

	return SumFrom(arr, zero)
}

// SumFrom adds every element of arr to initial, left to right.
func SumFrom[T Number](arr []T, initial T) T {
	sum := initial
	for _, v := range arr {
		sum += v
	}

	return sum
}

// Horner evaluates p(x) = coeff[0] + coeff[1]·x + ... + coeff[n]·xⁿ with
// n multiplications, folding from the highest coefficient down.
// An empty coefficient list is the zero polynomial.
func Horner(coeff []float64, x float64) float64 {
	var p float64
	for i := len(coeff) - 1; i >= 0; i-- {
		p = coeff[i] + x*p
	}

	return p
}
