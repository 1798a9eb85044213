package matrix

// Mul performs standard matrix multiplication c = a × b. a.Cols() must
// equal b.Rows(). Determinism: fixed i→k→j loop order over row-major
// strides, same as the teacher's Mul (matrix/impl_linear_algebra.go);
// zeros in a's row are skipped as a cheap sparsity shortcut.
func Mul(a, b *Dense) (*Dense, error) {
	if a.Cols() != b.Rows() {
		return nil, ErrDimensionMismatch
	}
	res, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	for i := 0; i < aRows; i++ {
		rowOffsetA := i * aCols
		rowOffsetR := i * bCols
		for k := 0; k < aCols; k++ {
			av := a.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB := k * bCols
			for j := 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}
	return res, nil
}
