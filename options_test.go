/*
 * options_test.go, part of anaprot.
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

import "testing"

func TestOptions(Te *testing.T) {
	O := DefaultOptions()
	if O.MaxAtoms() != 20000 || O.Precision() != Single {
		Te.Errorf("Wrong defaults: %d %v", O.MaxAtoms(), O.Precision())
	}
	if O.MaxAtoms(0) != 20000 || O.MaxAtoms(-3) != 20000 {
		Te.Error("Non-positive atom limits should be ignored")
	}
	if O.MaxAtoms(10) != 10 || O.MaxAtoms() != 10 {
		Te.Error("Couldn't set the atom limit")
	}
	if O.Precision(Double) != Double || O.Precision(Precision(7)) != Double {
		Te.Error("Couldn't set the precision, or an invalid one was accepted")
	}
	if Double.String() != "double" || Single.String() != "single" {
		Te.Error("Wrong precision names")
	}
	var nilopts *Options
	if nilopts.orDefault().MaxAtoms() != MaxAtoms {
		Te.Error("nil options should give the defaults")
	}
}
