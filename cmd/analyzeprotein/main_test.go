/*
 * main_test.go, part of anaprot.
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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

//Each case runs AnalyzeProtein with stdout and stderr going to the same
//buffer, as when both are redirected to one file, and compares the result
//with the golden file.
func TestGolden(Te *testing.T) {
	cases := []struct {
		golden string
		args   []string
		status int
	}{
		{"one", []string{"testdata/two.pdb"}, 0},
		{"many", []string{"testdata/two.pdb", "testdata/single.pdb", "testdata/small.pdb"}, 0},
		{"stop", []string{"testdata/two.pdb", "testdata/noatoms.pdb", "testdata/single.pdb"}, 1},
		{"keepgoing", []string{"-keep-going", "testdata/two.pdb", "testdata/noatoms.pdb", "testdata/single.pdb"}, 1},
		{"usage", nil, 1},
		{"usage", []string{"-double"}, 1},
		{"short", []string{"testdata/short.pdb"}, 1},
		{"badcoord", []string{"testdata/badcoord.pdb", "testdata/two.pdb"}, 1},
		{"missing", []string{"testdata/missing.pdb"}, 1},
		{"double", []string{"-double", "testdata/small.pdb"}, 0},
		{"double", []string{"testdata/small.pdb"}, 0},
		{"histo", []string{"-histo", "20", "testdata/two.pdb"}, 0},
	}
	for _, c := range cases {
		expected, err := os.ReadFile(filepath.Join("testdata", c.golden+".golden"))
		if err != nil {
			Te.Fatal(err)
		}
		var out bytes.Buffer
		status := run(c.args, &out, &out)
		if status != c.status {
			Te.Errorf("%s %v: expected exit status %d, got %d", c.golden, c.args, c.status, status)
		}
		if !bytes.Equal(out.Bytes(), expected) {
			Te.Errorf("%s %v: expected\n%s\ngot\n%s", c.golden, c.args, expected, out.Bytes())
		}
	}
}

func TestSeparateStreams(Te *testing.T) {
	var stdout, stderr bytes.Buffer
	status := run([]string{"testdata/two.pdb", "testdata/noatoms.pdb"}, &stdout, &stderr)
	if status != 1 {
		Te.Errorf("Expected exit status 1, got %d", status)
	}
	if stderr.String() != "Error - 0 atoms were found in the file testdata/noatoms.pdb\n" {
		Te.Errorf("Unexpected stderr %q", stderr.String())
	}
	one, _ := os.ReadFile("testdata/one.golden")
	if stdout.String() != string(one) {
		Te.Errorf("Unexpected stdout %q", stdout.String())
	}
}

func TestBadFlags(Te *testing.T) {
	var out bytes.Buffer
	if status := run([]string{"-maxatoms", "0", "testdata/two.pdb"}, &out, &out); status != 1 {
		Te.Errorf("Expected exit status 1 for -maxatoms 0, got %d", status)
	}
	if status := run([]string{"-nosuchflag", "testdata/two.pdb"}, &out, &out); status != 1 {
		Te.Errorf("Expected exit status 1 for an unknown flag, got %d", status)
	}
}

func TestHistoWidth(Te *testing.T) {
	for _, w := range []string{"NaN", "Inf", "-1"} {
		var out bytes.Buffer
		if status := run([]string{"-histo", w, "testdata/two.pdb"}, &out, &out); status != 1 {
			Te.Errorf("Expected exit status 1 for -histo %s, got %d", w, status)
		}
		if !strings.HasPrefix(out.String(), "Invalid -histo") {
			Te.Errorf("-histo %s: unexpected output %q", w, out.String())
		}
	}
	var stdout, stderr bytes.Buffer
	if status := run([]string{"-histo", "1e-12", "testdata/two.pdb"}, &stdout, &stderr); status != 1 {
		Te.Errorf("Expected exit status 1 for -histo 1e-12, got %d", status)
	}
	if !strings.Contains(stderr.String(), "too narrow") || stdout.Len() != 0 {
		Te.Errorf("Unexpected output %q %q", stdout.String(), stderr.String())
	}
}

func TestPlot(Te *testing.T) {
	dir := Te.TempDir()
	var stdout, stderr bytes.Buffer
	if status := run([]string{"-plot", dir, "testdata/small.pdb"}, &stdout, &stderr); status != 0 {
		Te.Fatalf("Expected exit status 0, got %d: %s", status, stderr.String())
	}
	if stderr.Len() != 0 {
		Te.Errorf("Unexpected warnings: %s", stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "small_radial.png")); err != nil {
		Te.Error(err)
	}
	double, _ := os.ReadFile("testdata/double.golden")
	if stdout.String() != string(double) {
		Te.Errorf("A plot shouldn't change the report, got\n%s", stdout.String())
	}
}
