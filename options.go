/*
 * options.go, part of anaprot.
 *
 * Copyright 2018 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chem

//Precision is the floating point precision used for the geometry.
type Precision int

const (
	//Single performs every operation in float32, giving the same
	//output as the reference AnalyzeProtein program.
	Single Precision = iota
	//Double performs every operation in float64 using gonum.
	Double
)

func (p Precision) String() string {
	if p == Double {
		return "double"
	}
	return "single"
}

//MaxAtoms is the default maximum number of atoms read from one file.
const MaxAtoms = 20000

//Options contains the options for reading and analyzing PDB files.
type Options struct {
	maxAtoms  int
	precision Precision
}

//DefaultOptions returns the options of the reference program:
//up to 20000 atoms per file, single precision.
func DefaultOptions() *Options {
	r := new(Options)
	r.maxAtoms = MaxAtoms
	r.precision = Single
	return r
}

//MaxAtoms returns the maximum number of atoms read from each file,
//and sets it to a new value, if given. Values smaller than 1 are ignored.
func (O *Options) MaxAtoms(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.maxAtoms = n[0]
	}
	return O.maxAtoms
}

//Precision returns the precision used for the geometry,
//and sets it to a new value, if given.
func (O *Options) Precision(p ...Precision) Precision {
	if len(p) > 0 && (p[0] == Single || p[0] == Double) {
		O.precision = p[0]
	}
	return O.precision
}

//orDefault returns O, or the default options if O is nil.
func (O *Options) orDefault() *Options {
	if O == nil {
		return DefaultOptions()
	}
	return O
}
