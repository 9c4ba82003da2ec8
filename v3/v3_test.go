/*
 * v3_test.go, part of anaprot.
 *
 * Copyright 2013 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("Expected 3 vectors, got %d", A.NVecs())
	}
	if v := A.Vec(nil, 1); v[0] != 4 || v[1] != 5 || v[2] != 6 {
		Te.Errorf("Wrong second vector %v", v)
	}
	if c := A.Col(nil, 2); c[0] != 3 || c[1] != 6 || c[2] != 9 {
		Te.Errorf("Wrong z column %v", c)
	}
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("Expected an error for a slice not divisible by 3")
	}
	if e, ok := err.(*Error); ok {
		if d := e.Decorate("TestNewMatrix"); len(d) != 2 || d[1] != "TestNewMatrix" {
			Te.Errorf("Unexpected decoration %v", d)
		}
	} else {
		Te.Errorf("Expected a *v3.Error, got %T", err)
	}
	if _, err = NewMatrix(nil); err == nil {
		Te.Error("Expected an error for empty data")
	}
}

func TestVecView(Te *testing.T) {
	A, err := NewMatrix([]float64{1.0, 2.0, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Errorf("Changes in the view are not reflected in the matrix:\n%s", A)
	}
	Te.Log("View\n", A, "\n", View)
}

func TestAddSubVec(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	orig := mat.DenseCopyOf(A.Dense)
	Row, err := NewMatrix([]float64{10, 20, 30})
	if err != nil {
		Te.Fatal(err)
	}
	B := Zeros(A.NVecs())
	B.AddVec(A, Row)
	if B.At(3, 2) != 42 {
		Te.Errorf("Wrong addition\n%s", B)
	}
	B.SubVec(B, Row)
	if !mat.Equal(B.Dense, orig) {
		Te.Errorf("Add and Sub are not inverses\n%s\n%s", B, A)
	}
	if Row.At(0, 0) != 10 {
		Te.Errorf("SubVec modified the vector: %s", Row)
	}
}

func TestSubVecInPlace(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 6, 8, 7, 10, 13})
	if err != nil {
		Te.Fatal(err)
	}
	//the vector is a view of the same matrix that gets modified.
	A.SubVec(A, A.VecView(0))
	expected := mat.NewDense(3, 3, []float64{0, 0, 0, 3, 4, 5, 6, 8, 10})
	if !mat.Equal(A.Dense, expected) {
		Te.Errorf("Wrong in-place subtraction\n%s", A)
	}
	B, err := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	if err != nil {
		Te.Fatal(err)
	}
	B.AddVec(B, B.VecView(1))
	if B.At(0, 0) != 3 || B.At(1, 2) != 4 {
		Te.Errorf("Wrong in-place addition\n%s", B)
	}
}

func TestDense2Matrix(Te *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			Te.Error("Expected a panic for a Dense with 2 columns")
		}
	}()
	Dense2Matrix(mat.NewDense(2, 2, nil))
}
