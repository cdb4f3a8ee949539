/*
 * v3.go, part of protview.
 *
 * Copyright 2024 The protview authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Error is the error type of the package.
type Error string

func (err Error) Error() string { return string(err) }

const (
	ErrNotXx3Matrix = Error("v3: A v3.Matrix should have 3 columns")
	ErrNoVectors    = Error("v3: The operation requires at least one vector")
)

// Matrix is a set of vectors in 3D space.
type Matrix struct {
	*mat.Dense
}

// NewMatrix returns a matrix built on data, which must contain a multiple
// of 3 elements. The data slice is used directly, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	if l%3 != 0 {
		return nil, Error(fmt.Sprintf("v3: Input slice length %d not divisible by 3", l))
	}
	if l == 0 {
		return &Matrix{}, nil
	}
	return &Matrix{mat.NewDense(l/3, 3, data)}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors and 3 columns.
func Zeros(vecs int) *Matrix {
	if vecs <= 0 {
		return &Matrix{}
	}
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

// Dense2Matrix wraps A, which must have 3 columns.
func Dense2Matrix(A *mat.Dense) (*Matrix, error) {
	if _, c := A.Dims(); c != 3 {
		return nil, ErrNotXx3Matrix
	}
	return &Matrix{A}, nil
}

// NVecs returns the number of vectors (rows) in the matrix.
func (F *Matrix) NVecs() int {
	if F == nil || F.Dense == nil {
		return 0
	}
	r, _ := F.Dims()
	return r
}

// Vec returns the i-th vector as an array.
func (F *Matrix) Vec(i int) [3]float64 {
	r := F.RawRowView(i)
	return [3]float64{r[0], r[1], r[2]}
}

// SetVec sets the i-th vector to x, y, z.
func (F *Matrix) SetVec(i int, x, y, z float64) {
	r := F.RawRowView(i)
	r[0], r[1], r[2] = x, y, z
}

// VecView returns a view of the i-th vector. Changes to the view
// affect the original matrix.
func (F *Matrix) VecView(i int) *Matrix {
	return &Matrix{F.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

// SubVec puts in F each vector of A minus vec.
// F must have the same number of vectors as A.
func (F *Matrix) SubVec(A, vec *Matrix) {
	v := vec.RawRowView(0)
	for i := 0; i < A.NVecs(); i++ {
		floats.SubTo(F.RawRowView(i), A.RawRowView(i), v)
	}
}

// AddVec puts in F each vector of A plus vec.
// F must have the same number of vectors as A.
func (F *Matrix) AddVec(A, vec *Matrix) {
	v := vec.RawRowView(0)
	for i := 0; i < A.NVecs(); i++ {
		floats.AddTo(F.RawRowView(i), A.RawRowView(i), v)
	}
}

// Centroid returns a 1x3 matrix with the mean of the vectors in A.
func Centroid(A *Matrix) (*Matrix, error) {
	n := A.NVecs()
	if n == 0 {
		return nil, ErrNoVectors
	}
	ret := Zeros(1)
	col := make([]float64, n)
	for j := 0; j < 3; j++ {
		mat.Col(col, j, A)
		ret.Set(0, j, stat.Mean(col, nil))
	}
	return ret, nil
}

// Norms returns the euclidean norm of each vector in A.
func (F *Matrix) Norms() []float64 {
	n := F.NVecs()
	ret := make([]float64, n)
	for i := 0; i < n; i++ {
		ret[i] = floats.Norm(F.RawRowView(i), 2)
	}
	return ret
}

// MaxDistance returns the largest distance between a vector in A and
// center. It returns 0 for an empty matrix.
func MaxDistance(A, center *Matrix) float64 {
	var max float64
	c := center.RawRowView(0)
	for i := 0; i < A.NVecs(); i++ {
		if d := floats.Distance(A.RawRowView(i), c, 2); d > max {
			max = d
		}
	}
	return max
}

func (F *Matrix) String() string {
	n := F.NVecs()
	b := new(strings.Builder)
	b.WriteString("[")
	for i := 0; i < n; i++ {
		r := F.RawRowView(i)
		fmt.Fprintf(b, "%8.3f %8.3f %8.3f", r[0], r[1], r[2])
		if i < n-1 {
			b.WriteString("\n ")
		}
	}
	b.WriteString("]")
	return b.String()
}
