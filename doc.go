/*
 * doc.go, part of anaprot.
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

/*Package chem reads the atomic coordinates of PDB files and calculates simple
shape descriptors for them.

	**Capabilities**

    Reads the coordinates of the ATOM records of plain, gzip (.gz) or
	Zstandard (.zst) compressed PDB files.

    Calculates the center of gravity (the geometric center, all atoms
	weight the same), the radius of gyration and the largest distance
	between 2 atoms (Dmax).

    The calculation can be done in single precision, giving exactly the same
	numbers as the AnalyzeProtein reference program, or in double precision
	using gonum.

    Writes the report of AnalyzeProtein.

    Builds histograms of the distances between the atoms and the center of
	gravity (see the histo and chemplot packages).

Coordinates are kept in a v3.Matrix, based on gonum's mat.Dense. Each
row of a v3.Matrix represents one point in space.

All the errors returned by the package are of type *Error, which carries the kind of
problem, the file name and the message printed by AnalyzeProtein.*/
package chem
