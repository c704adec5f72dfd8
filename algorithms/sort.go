// Package algorithms - in-place comparison sorts.
//
// Every sort here mutates its argument and returns nothing. Empty and
// single-element slices are left untouched.
//
// Stable:   InsertionSort, RecursiveInsertionSort, BubbleSort, MergeSort.
// Unstable: SelectionSort.
package algorithms

import "golang.org/x/exp/constraints"

// InsertionSort sorts arr in ascending order.
//
// Each step takes arr[i] as the key and shifts the larger elements of the
// sorted prefix arr[:i] one slot right until the key's slot is free.
//
// Time complexity: O(n²) worst, O(n) on sorted input
// Memory usage:    O(1)
func InsertionSort[T constraints.Ordered](arr []T) {
	var i, j int
	var key T
	for i = 1; i < len(arr); i++ {
		key = arr[i]
		for j = i - 1; j >= 0 && arr[j] > key; j-- {
			arr[j+1] = arr[j]
		}
		arr[j+1] = key
	}
}

// RecursiveInsertionSort sorts arr by recursively sorting arr[:n-1] and then
// inserting arr[n-1] into place.
//
// Recursion depth is len(arr); meant for teaching, not for large inputs.
func RecursiveInsertionSort[T constraints.Ordered](arr []T) {
	if len(arr) <= 1 {
		return
	}
	n := len(arr)
	RecursiveInsertionSort(arr[:n-1])

	key := arr[n-1]
	j := n - 1
	for j > 0 && arr[j-1] > key {
		arr[j] = arr[j-1]
		j--
	}
	arr[j] = key
}

// SelectionSort sorts arr by repeatedly swapping the minimum of the unsorted
// suffix into position i.
//
// Time complexity: O(n²) always
// Memory usage:    O(1)
func SelectionSort[T constraints.Ordered](arr []T) {
	var i, j, minIdx int
	for i = 0; i+1 < len(arr); i++ {
		minIdx = i
		for j = i + 1; j < len(arr); j++ {
			if arr[j] < arr[minIdx] {
				minIdx = j
			}
		}
		arr[i], arr[minIdx] = arr[minIdx], arr[i]
	}
}

// BubbleSort sorts arr by sinking the smallest remaining element of arr[i:]
// down to position i on every pass.
func BubbleSort[T constraints.Ordered](arr []T) {
	var i, j int
	for i = 0; i+1 < len(arr); i++ {
		for j = len(arr) - 1; j > i; j-- {
			if arr[j] < arr[j-1] {
				arr[j], arr[j-1] = arr[j-1], arr[j]
			}
		}
	}
}

// MergeSort sorts arr with top-down merge sort over half-open ranges.
//
// Implementation:
//   - Stage 1: split [p, r) at q = (p+r)/2 and sort both halves.
//   - Stage 2: merge the halves through two scratch copies; ties take the
//     left element first, which keeps the sort stable.
//
// Time complexity: O(n log n)
// Memory usage:    O(n) scratch per merge level
func MergeSort[T constraints.Ordered](arr []T) {
	mergeSort(arr, 0, len(arr))
}

// mergeSort sorts arr[p:r].
func mergeSort[T constraints.Ordered](arr []T, p, r int) {
	if r-p <= 1 {
		return
	}
	q := p + (r-p)/2
	mergeSort(arr, p, q)
	mergeSort(arr, q, r)
	merge(arr, p, q, r)
}

// merge combines the sorted runs arr[p:q] and arr[q:r].
func merge[T constraints.Ordered](arr []T, p, q, r int) {
	left := append([]T(nil), arr[p:q]...)
	right := append([]T(nil), arr[q:r]...)

	i, j, k := 0, 0, p
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			arr[k] = left[i]
			i++
		} else {
			arr[k] = right[j]
			j++
		}
		k++
	}
	k += copy(arr[k:], left[i:])
	copy(arr[k:], right[j:])
}
