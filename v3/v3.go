/*
 * v3.go, part of anaprot.
 *
 * Copyright 2015 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
)

const cols int = 3

//Matrix is a set of vectors in 3D space, one vector per row.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum Dense underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a Dense with 3 columns into a Matrix. It panics if A doesn't
//have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != cols {
		panic(not3xXMatrix)
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data. The slice is
//used as the backing data of the matrix, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, &Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		return nil, &Error{ErrEmpty, []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors. vecs must be larger than 0.
func Zeros(vecs int) *Matrix {
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != cols {
		panic(not3xXMatrix)
	}
	return r
}

//Len is the same as NVecs
func (F *Matrix) Len() int {
	return F.NVecs()
}

//VecView returns a view of the ith vector of F. Changes in the
//view are reflected in F.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, cols).(*mat.Dense)
	return &Matrix{r}
}

//Vec copies the ith vector of F into dst, allocating it if
//dst is nil, and returns it.
func (F *Matrix) Vec(dst []float64, i int) []float64 {
	return mat.Row(dst, i, F.Dense)
}

//SubVec subtracts the vector vec from each vector of the matrix A, putting
//the result on the receiver. Panics if matrices are mismatched.
//F can be A, and vec can be a view of either. vec is not modified.
func (F *Matrix) SubVec(A, vec *Matrix) {
	F.checkVec(A, vec)
	neg := vec.Vec(nil, 0)
	floats.Scale(-1, neg)
	F.addVec(A, neg)
}

//AddVec adds the vector vec to each vector of the matrix A, putting
//the result on the receiver. Panics if matrices are mismatched.
//F can be A, and vec can be a view of either.
func (F *Matrix) AddVec(A, vec *Matrix) {
	F.checkVec(A, vec)
	F.addVec(A, vec.Vec(nil, 0))
}

func (F *Matrix) checkVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(mat.ErrShape)
	}
}

//addVec works row by row on the raw data, so the receiver and A can be the same.
//v must be a copy, not a view of A or F.
func (F *Matrix) addVec(A *Matrix, v []float64) {
	for i := 0; i < A.NVecs(); i++ {
		floats.AddTo(F.RawRowView(i), A.RawRowView(i), v)
	}
}

//Col copies the ith column (0 for x, 1 for y, 2 for z) of F
//into dst, allocating it if dst is nil, and returns it.
func (F *Matrix) Col(dst []float64, i int) []float64 {
	return mat.Col(dst, i, F.Dense)
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, c := F.Dims()
	v := make([]string, r)
	for i := 0; i < r; i++ {
		row := make([]string, c)
		for j := range row {
			row[j] = fmt.Sprintf("%8.3f", F.At(i, j))
		}
		v[i] = strings.Join(row, " ")
	}
	return strings.Join(v, "\n")
}

//Errors

//Error is the error type of the package. It is
//the same as chem.Error but avoids a circular import.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

//Decorate adds the deco string to the slice of callers of the
//error and returns the slice. An empty string adds nothing.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

const (
	ErrEmpty     = "v3: No data given"
	not3xXMatrix = "v3: A Matrix should have 3 columns"
)
