// Package algorithms implements the introductory algorithms of CLRS chapter 2
// as generic free functions over slices.
//
// It provides:
//
//   - Sorting (in place)
//     – InsertionSort, RecursiveInsertionSort
//     – SelectionSort
//     – BubbleSort
//     – MergeSort
//
//   - Searching
//     – LinearSearch
//
//   - Arithmetic
//     – Sum, SumFrom
//     – Horner (polynomial evaluation)
//
// Ordering constraints come from golang.org/x/exp/constraints, so every sort
// works on any integer, float or string slice. Float slices containing NaN
// are not ordered and the result is unspecified.
package algorithms
