// SPDX-License-Identifier: MIT

package matrix

// Transpose returns a new cols×rows Matrix with result[j,i] = clone(m[i,j]).
// The receiver is left unchanged; the result inherits its borrow-check
// setting. Transpose(Transpose(m)) equals m element-wise.
//
// Complexity: O(r*c) time and memory.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	if m.guard.readBlocked() {
		fail(ctxMatrix, ctxTranspose, ErrBorrowConflict)
	}
	out := newMatrix[T](ctxTranspose, m.cols, m.rows, []Option{WithBorrowCheck(m.guard != nil)})

	// Both shapes are known here, so index the stores directly.
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			out.buf.data[j*m.rows+i] = cloneOf(m.buf.data[base+j])
		}
	}

	return out
}
