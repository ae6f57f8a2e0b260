package matrix

import "fmt"

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	// Allocate flat slice and return
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from explicit row slices.
// Every row must have the same, positive length; the input is copied,
// never aliased.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])

	// Validate rectangularity before any allocation
	var i int
	for i = range rows {
		if len(rows[i]) != cols {
			return nil, ErrBadShape
		}
	}

	// Copy row by row into flat storage
	m := &Dense{r: len(rows), c: cols, data: make([]float64, len(rows)*cols)}
	for i = range rows {
		copy(m.data[i*cols:(i+1)*cols], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows in the matrix. O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col), or ErrOutOfRange. O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set stores v at (row, col), or returns ErrOutOfRange. O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix; the receiver is not aliased.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// RawRow returns the backing slice of row i without copying.
// The caller must not grow the slice; writes alias the matrix.
// Intended for hot loops that have already validated 0 <= i < Rows().
func (m *Dense) RawRow(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c]
}
