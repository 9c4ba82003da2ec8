/*
 * main.go, part of anaprot.
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

/*AnalyzeProtein reads the ATOM records of one or more PDB files and prints, for each one,
the number of atoms read, their center of gravity (Cg), radius of gyration (Rg) and the largest
distance between 2 atoms (Dmax).

Usage:

	AnalyzeProtein [flags] <pdb1> <pdb2> ...

Files ending in .gz or .zst are decompressed. By default, the first file that can't be
analyzed stops the program with exit status 1. With -keep-going, the error is reported,
the remaining files are analyzed, and the exit status is 1 at the end.

The flags are:

	-double
		Do the calculations in double precision. By default, single precision is used,
		which gives the same output as the reference program.
	-maxatoms N
		Read at most N atoms from each file (default 20000).
	-keep-going
		Don't stop at the first file with errors.
	-histo W
		After each report, print a histogram of the distances between the atoms and
		the center of gravity, with bins W Angstrom wide.
	-plot DIR
		Save a plot of that histogram in DIR, as <file>_radial.png. Without -histo,
		the bins are 1 Angstrom wide, or Dmax/100 for larger structures.

A histogram can't have more than 100000 bins; a file that would need more fails.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	chem "github.com/rmera/anaprot"
	"github.com/rmera/anaprot/chemplot"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

//maxHistoBins is the largest number of bins a radial histogram can have.
const maxHistoBins = 100000

type config struct {
	keepGoing bool
	histo     float64
	plotdir   string
}

//run executes AnalyzeProtein with the command line arguments args, and
//returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	opts := chem.DefaultOptions()
	var cfg config
	var double bool
	var maxatoms int
	fs := flag.NewFlagSet("AnalyzeProtein", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&double, "double", false, "Use double precision.")
	fs.IntVar(&maxatoms, "maxatoms", chem.MaxAtoms, "The maximum number of atoms read from each file.")
	fs.BoolVar(&cfg.keepGoing, "keep-going", false, "Analyze the remaining files after an error.")
	fs.Float64Var(&cfg.histo, "histo", 0, "Print a histogram of the distances to Cg with bins of this width (A).")
	fs.StringVar(&cfg.plotdir, "plot", "", "Save a plot of the distances to Cg in this directory.")
	fs.Usage = func() {
		fmt.Fprintln(stderr, chem.ErrUsage())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, chem.ErrUsage())
		return 1
	}
	if double {
		opts.Precision(chem.Double)
	}
	if maxatoms < 1 {
		fmt.Fprintf(stderr, "Invalid -maxatoms %d\n", maxatoms)
		return 1
	}
	opts.MaxAtoms(maxatoms)
	if math.IsNaN(cfg.histo) || math.IsInf(cfg.histo, 0) || cfg.histo < 0 {
		fmt.Fprintf(stderr, "Invalid -histo %g\n", cfg.histo)
		return 1
	}
	logger := log.New(stderr, "", 0)
	//Like the reference program, the reports are only written out when the run finishes.
	out := bufio.NewWriter(stdout)
	defer out.Flush()
	status := 0
	for _, name := range fs.Args() {
		err := analyzeFile(out, logger, name, opts, cfg)
		if err == nil {
			continue
		}
		fmt.Fprintln(stderr, err)
		status = 1
		if !cfg.keepGoing {
			break
		}
	}
	return status
}

//analyzeFile analyzes the PDB file name and writes the report to out.
func analyzeFile(out io.Writer, logger *log.Logger, name string, opts *chem.Options, cfg config) error {
	set, err := chem.PDBFileAtoms(name, opts)
	if err != nil {
		return err
	}
	g, err := chem.Analyze(set, opts)
	if err != nil {
		return err
	}
	histo := cfg.histo > 0 || cfg.plotdir != ""
	width := cfg.histo
	if width <= 0 {
		//plot only
		width = math.Max(1, g.Dmax/100)
	}
	//No atom is farther than Dmax from Cg.
	if histo && g.Dmax/width > maxHistoBins {
		return fmt.Errorf("Histogram bins of %g A are too narrow for %s: more than %d bins", width, name, maxHistoBins)
	}
	if err = chem.WriteReport(out, g, name); err != nil {
		return err
	}
	if !histo {
		return nil
	}
	h := chem.RadialProfile(set, g, width)
	if cfg.histo > 0 {
		fmt.Fprintf(out, "Distances to Cg\n%s\n", h.Table())
	}
	if cfg.plotdir != "" {
		base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
		plotname := filepath.Join(cfg.plotdir, base+"_radial.png")
		//A plot that can't be written doesn't spoil the analysis.
		if err := chemplot.RadialPlot(h, "Radial distribution of "+filepath.Base(name), plotname); err != nil {
			logger.Printf("WARNING: %s", err)
		}
	}
	return nil
}
