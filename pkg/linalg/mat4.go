package linalg

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotInvertible is returned by Inverse when the determinant is exactly zero.
var ErrNotInvertible = errors.New("linalg: matrix is not invertible")

// Mat4 is a 4x4 matrix stored column-major: m[col][row].
// Layout (row-wise view):
//
//	[m[0][0] m[1][0] m[2][0] m[3][0]]
//	[m[0][1] m[1][1] m[2][1] m[3][1]]
//	[m[0][2] m[1][2] m[2][2] m[3][2]]
//	[m[0][3] m[1][3] m[2][3] m[3][3]]
type Mat4 [4][4]float64

// NewMat4 builds a matrix from its four columns.
func NewMat4(c0, c1, c2, c3 [4]float64) Mat4 {
	return Mat4{c0, c1, c2, c3}
}

// Col returns column i.
func (m Mat4) Col(i int) [4]float64 {
	return m[i]
}

// At returns the element in the given column and row.
func (m Mat4) At(col, row int) float64 {
	return m[col][row]
}

// MulScalar scales every element by s.
func (m Mat4) MulScalar(s float64) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col][row] = m[col][row] * s
		}
	}
	return result
}

// MulVec4 returns m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var result Vec4
	for row := 0; row < 4; row++ {
		result[row] = m[0][row]*v[0] + m[1][row]*v[1] + m[2][row]*v[2] + m[3][row]*v[3]
	}
	return result
}

// Mul returns m * other. Column i of the result is m applied to column i of other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col][row] =
				m[0][row]*other[col][0] +
					m[1][row]*other[col][1] +
					m[2][row]*other[col][2] +
					m[3][row]*other[col][3]
		}
	}
	return result
}

// Add returns the elementwise sum.
func (m Mat4) Add(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col][row] = m[col][row] + other[col][row]
		}
	}
	return result
}

// Sub returns the elementwise difference.
func (m Mat4) Sub(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col][row] = m[col][row] - other[col][row]
		}
	}
	return result
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	t := m
	for i := 1; i < 4; i++ {
		for j := 0; j < i; j++ {
			t[i][j], t[j][i] = t[j][i], t[i][j]
		}
	}
	return t
}

// minors returns the determinant of every 3x3 minor: minors[i][j] is the
// minor with column i and row j deleted.
func (m Mat4) minors() [4][4]float64 {
	var out [4][4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s [3][3]float64
			c := 0
			for k := 0; k < 4; k++ {
				if k == i {
					continue
				}
				r := 0
				for l := 0; l < 4; l++ {
					if l == j {
						continue
					}
					s[c][r] = m[k][l]
					r++
				}
				c++
			}
			out[i][j] = s[0][0]*s[1][1]*s[2][2] +
				s[1][0]*s[2][1]*s[0][2] +
				s[2][0]*s[0][1]*s[1][2] -
				s[0][2]*s[1][1]*s[2][0] -
				s[1][2]*s[2][1]*s[0][0] -
				s[2][2]*s[0][1]*s[1][0]
		}
	}
	return out
}

// determinant expands along the first column.
func (m Mat4) determinant(minors [4][4]float64) float64 {
	return m[0][0]*minors[0][0] -
		m[0][1]*minors[0][1] +
		m[0][2]*minors[0][2] -
		m[0][3]*minors[0][3]
}

// Determinant returns the determinant of m.
func (m Mat4) Determinant() float64 {
	return m.determinant(m.minors())
}

// Inverse returns the inverse computed as adjugate / determinant.
// Only an exactly-zero determinant is rejected; near-singular matrices
// produce numerically unstable results.
func (m Mat4) Inverse() (Mat4, error) {
	minors := m.minors()

	var cofactors Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if (i+j)%2 == 0 {
				cofactors[i][j] = minors[i][j]
			} else {
				cofactors[i][j] = -minors[i][j]
			}
		}
	}

	det := m.determinant(minors)
	if det == 0 {
		return Mat4{}, ErrNotInvertible
	}

	return cofactors.Transpose().MulScalar(1 / det), nil
}

// Float32s returns the 16 elements column-major, ready for a uniform upload.
func (m Mat4) Float32s() [16]float32 {
	var out [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] = float32(m[col][row])
		}
	}
	return out
}

// String formats the matrix as four rows with four decimals each.
func (m Mat4) String() string {
	var b strings.Builder
	for row := 0; row < 4; row++ {
		b.WriteString("[")
		for col := 0; col < 4; col++ {
			fmt.Fprintf(&b, " %.4f", m[col][row])
		}
		b.WriteString(" ]")
		if row != 3 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
