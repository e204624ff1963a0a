package interval

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major matrix of intervals.
type Matrix struct {
	rows, cols int
	data       []Interval
}

// NewMatrix returns a rows x cols matrix of degenerate zero intervals.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 1 || cols < 1 {
		panic(fmt.Errorf("%w: %dx%d matrix", ErrDimensionMismatch, rows, cols))
	}
	return &Matrix{rows: rows, cols: cols, data: make([]Interval, rows*cols)}
}

// NewMatrixFrom returns a matrix with the given rows.
// It fails with ErrDimensionMismatch if the rows are not all of equal,
// positive length.
func NewMatrixFrom(rows [][]Interval) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrDimensionMismatch)
	}
	m := NewMatrix(len(rows), len(rows[0]))
	for i, r := range rows {
		if len(r) != m.cols {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrDimensionMismatch, i, len(r), m.cols)
		}
		copy(m.data[i*m.cols:(i+1)*m.cols], r)
	}
	return m, nil
}

// Identity returns the n x n degenerate identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, Point(1))
	}
	return m
}

// FromDense returns the degenerate matrix whose entries are those of d.
func FromDense(d *mat.Dense) *Matrix {
	r, c := d.Dims()
	m := NewMatrix(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, Point(d.At(i, j)))
		}
	}
	return m
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// IsSquare reports whether m is square.
func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) Interval { return m.data[i*m.cols+j] }

// Set sets the element at row i, column j.
func (m *Matrix) Set(i, j int, x Interval) { m.data[i*m.cols+j] = x }

// CopyNew returns a deep copy of the matrix.
func (m *Matrix) CopyNew() *Matrix {
	c := &Matrix{rows: m.rows, cols: m.cols, data: make([]Interval, len(m.data))}
	copy(c.data, m.data)
	return c
}

// SwapRows exchanges rows i and j in place.
func (m *Matrix) SwapRows(i, j int) {
	if i == j {
		return
	}
	ri := m.data[i*m.cols : (i+1)*m.cols]
	rj := m.data[j*m.cols : (j+1)*m.cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// Mid returns the midpoint matrix.
func (m *Matrix) Mid() *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			d.Set(i, j, m.At(i, j).Mid())
		}
	}
	return d
}

// Rad returns the radius matrix, rounded up so that Mid ± Rad contains m
// elementwise.
func (m *Matrix) Rad() *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			d.Set(i, j, m.At(i, j).Rad())
		}
	}
	return d
}

// Add returns m + o.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	if m.rows != o.rows || m.cols != o.cols {
		return nil, fmt.Errorf("%w: %dx%d and %dx%d", ErrDimensionMismatch, m.rows, m.cols, o.rows, o.cols)
	}
	out := NewMatrix(m.rows, m.cols)
	for k := range m.data {
		out.data[k] = m.data[k].Add(o.data[k])
	}
	return out, nil
}

// Sub returns m - o.
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) {
	if m.rows != o.rows || m.cols != o.cols {
		return nil, fmt.Errorf("%w: %dx%d and %dx%d", ErrDimensionMismatch, m.rows, m.cols, o.rows, o.cols)
	}
	out := NewMatrix(m.rows, m.cols)
	for k := range m.data {
		out.data[k] = m.data[k].Sub(o.data[k])
	}
	return out, nil
}

// MulVec returns the interval matrix-vector product m * v. Repeated
// occurrences of the same entry are treated as independent, which is the
// dominant source of enclosure overestimation (the dependency problem).
func (m *Matrix) MulVec(v Vector) (Vector, error) {
	if m.cols != len(v) {
		return nil, fmt.Errorf("%w: %dx%d matrix and vector of length %d", ErrDimensionMismatch, m.rows, m.cols, len(v))
	}
	out := make(Vector, m.rows)
	for i := 0; i < m.rows; i++ {
		var s Interval
		for j := 0; j < m.cols; j++ {
			s = s.Add(m.At(i, j).Mul(v[j]))
		}
		out[i] = s
	}
	return out, nil
}

// Mul returns the interval matrix product m * o.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if m.cols != o.rows {
		return nil, fmt.Errorf("%w: %dx%d and %dx%d", ErrDimensionMismatch, m.rows, m.cols, o.rows, o.cols)
	}
	out := NewMatrix(m.rows, o.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < o.cols; j++ {
			var s Interval
			for k := 0; k < m.cols; k++ {
				s = s.Add(m.At(i, k).Mul(o.At(k, j)))
			}
			out.Set(i, j, s)
		}
	}
	return out, nil
}

// MulDenseMat returns the product c * a of a real matrix with an interval
// matrix, with outward rounding. Used to apply preconditioners.
func MulDenseMat(c *mat.Dense, a *Matrix) (*Matrix, error) {
	cr, cc := c.Dims()
	if cc != a.rows {
		return nil, fmt.Errorf("%w: %dx%d and %dx%d", ErrDimensionMismatch, cr, cc, a.rows, a.cols)
	}
	out := NewMatrix(cr, a.cols)
	for i := 0; i < cr; i++ {
		for j := 0; j < a.cols; j++ {
			var s Interval
			for k := 0; k < cc; k++ {
				s = s.Add(a.At(k, j).MulFloat(c.At(i, k)))
			}
			out.Set(i, j, s)
		}
	}
	return out, nil
}

// MulDenseVec returns the product c * v of a real matrix with an interval
// vector, with outward rounding.
func MulDenseVec(c *mat.Dense, v Vector) (Vector, error) {
	cr, cc := c.Dims()
	if cc != len(v) {
		return nil, fmt.Errorf("%w: %dx%d matrix and vector of length %d", ErrDimensionMismatch, cr, cc, len(v))
	}
	out := make(Vector, cr)
	for i := 0; i < cr; i++ {
		var s Interval
		for k := 0; k < cc; k++ {
			s = s.Add(v[k].MulFloat(c.At(i, k)))
		}
		out[i] = s
	}
	return out, nil
}
