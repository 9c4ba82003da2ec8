/*
 * geometric.go, part of anaprot.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package chem

import (
	"math"

	v3 "github.com/rmera/anaprot/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//Geometry contains the shape descriptors of a set of atoms.
type Geometry struct {
	N    int        //number of atoms
	Cg   [3]float64 //center of gravity (geometric center, all atoms weight the same)
	Rg   float64    //radius of gyration
	Dmax float64    //largest distance between 2 atoms
}

//Analyze returns the center of gravity, radius of gyration and maximum
//distance of the atoms in set. The precision of the calculation is taken
//from opts, or the default is used if opts is nil.
func Analyze(set *AtomSet, opts *Options) (*Geometry, error) {
	opts = opts.orDefault()
	if set.Len() == 0 {
		name := ""
		if set != nil {
			name = set.Name
		}
		return nil, newError(EmptyResultError, name, "Analyze", zeroAtomsMsg, name)
	}
	if opts.Precision() == Double {
		return analyzeDouble(set.Coords), nil
	}
	return analyzeSingle(set.Coords), nil
}

//Double precision, gonum

//Centroid returns the geometric center of coords.
func Centroid(coords *v3.Matrix) []float64 {
	ret := make([]float64, 3)
	col := make([]float64, coords.NVecs())
	for i := range ret {
		ret[i] = stat.Mean(coords.Col(col, i), nil)
	}
	return ret
}

//Distance returns the euclidean distance between the 3D points a and b.
func Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

//RadGyr returns the radius of gyration of coords around cg, i.e. the square root of the
//mean squared distance between the atoms and cg.
func RadGyr(coords *v3.Matrix, cg []float64) float64 {
	n := coords.NVecs()
	center, err := v3.NewMatrix([]float64{cg[0], cg[1], cg[2]})
	if err != nil {
		panic(err) //we just gave it 3 numbers
	}
	centered := v3.Zeros(n)
	centered.SubVec(coords, center)
	//the Frobenius norm
	fro := mat.Norm(centered.Dense, 2)
	return fro / math.Sqrt(float64(n))
}

//MaxDistance returns the largest distance between 2 atoms in coords.
//All the pairs are compared. A single atom gives 0.
func MaxDistance(coords *v3.Matrix) float64 {
	n := coords.NVecs()
	var dmax float64
	for i := 0; i < n; i++ {
		a := coords.RawRowView(i)
		for j := i + 1; j < n; j++ {
			if d := Distance(a, coords.RawRowView(j)); d > dmax {
				dmax = d
			}
		}
	}
	return dmax
}

func analyzeDouble(coords *v3.Matrix) *Geometry {
	g := new(Geometry)
	g.N = coords.NVecs()
	cg := Centroid(coords)
	copy(g.Cg[:], cg)
	g.Rg = RadGyr(coords, cg)
	g.Dmax = MaxDistance(coords)
	return g
}

//Single precision

type vec32 [3]float32

//The explicit conversions round each operation to float32 and keep the
//compiler from fusing them.
func distance32(a, b vec32) float32 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return sqrt32(float32(dx*dx) + float32(dy*dy) + float32(dz*dz))
}

//A float64 square root rounded to float32 is the correctly rounded
//float32 square root.
func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func analyzeSingle(coords *v3.Matrix) *Geometry {
	n := coords.NVecs()
	atoms := make([]vec32, n)
	for i := range atoms {
		r := coords.RawRowView(i)
		atoms[i] = vec32{float32(r[0]), float32(r[1]), float32(r[2])}
	}
	var cg vec32
	for _, a := range atoms {
		cg[0] += a[0]
		cg[1] += a[1]
		cg[2] += a[2]
	}
	for i := range cg {
		cg[i] /= float32(n)
	}
	var rg, dmax float32
	for i := range atoms {
		for j := i + 1; j < n; j++ {
			if d := distance32(atoms[i], atoms[j]); d > dmax {
				dmax = d
			}
		}
		d := distance32(cg, atoms[i])
		rg += float32(d * d)
	}
	rg = sqrt32(rg / float32(n))
	return &Geometry{
		N:    n,
		Cg:   [3]float64{float64(cg[0]), float64(cg[1]), float64(cg[2])},
		Rg:   float64(rg),
		Dmax: float64(dmax),
	}
}

//RadialDistances returns the distance between each atom in set and
//the center of gravity in g, in the order of the atoms.
func RadialDistances(set *AtomSet, g *Geometry) []float64 {
	ret := make([]float64, set.Len())
	for i := range ret {
		ret[i] = Distance(set.Coords.RawRowView(i), g.Cg[:])
	}
	return ret
}
