/*
 * report.go, part of anaprot.
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

import (
	"fmt"
	"io"

	"github.com/rmera/anaprot/histo"
)

//WriteReport writes the analysis of the file name to w, in the
//format of the reference AnalyzeProtein program.
func WriteReport(w io.Writer, g *Geometry, name string) error {
	_, err := fmt.Fprintf(w, "PDB file %s, %d atoms were read\nCg = %.3f %.3f %.3f\nRg = %.3f\nDmax = %.3f\n",
		name, g.N, g.Cg[0], g.Cg[1], g.Cg[2], g.Rg, g.Dmax)
	return err
}

//RadialProfile returns a histogram, with bins of the given width, of the distances
//between the atoms in set and their center of gravity, given in g.
func RadialProfile(set *AtomSet, g *Geometry, width float64) *histo.Data {
	d := RadialDistances(set, g)
	var far float64
	for _, v := range d {
		if v > far {
			far = v
		}
	}
	return histo.NewData(histo.EvenDividers(0, far, width), d)
}
