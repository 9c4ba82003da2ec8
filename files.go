/*
 * files.go, part of anaprot.
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
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/anaprot/v3"
)

//Columns of the coordinates in an ATOM line (0-based) and width of each field.
const (
	XOffset    = 30
	YOffset    = 38
	ZOffset    = 46
	CoordWidth = 8
)

const (
	//AtomRecord is the beginning of every line read by AnalyzeProtein.
	AtomRecord = "ATOM  "
	//MinLineLen is the minimum length of an ATOM line, counting the newline.
	MinLineLen = 61
	//MaxLineLen is the size of the line buffer. A line is read in pieces of
	//at most MaxLineLen-1 bytes, and each piece is treated as a line.
	MaxLineLen = 80
)

//AtomSet contains the coordinates read from a PDB file.
type AtomSet struct {
	Name string
	//One vector per atom, in the order of the file.
	//nil if no atoms were read.
	Coords *v3.Matrix
}

//Len returns the number of atoms in the set.
func (A *AtomSet) Len() int {
	if A == nil || A.Coords == nil {
		return 0
	}
	return A.Coords.NVecs()
}

//IsAtomLine returns true if line is an ATOM record.
func IsAtomLine(line string) bool {
	return strings.HasPrefix(line, AtomRecord)
}

//Coordinate parses the CoordWidth-long field that starts at offset in line.
//Spaces around the number are ignored.
func Coordinate(line string, offset int) (float64, error) {
	if offset < 0 || len(line) < offset+CoordWidth {
		return 0, newError(MalformedLineError, "", "Coordinate", shortLineMsg, len(line))
	}
	field := line[offset : offset+CoordWidth]
	c, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
	if err != nil || math.IsInf(c, 0) || math.IsNaN(c) {
		e := newError(CoordinateParseError, "", "Coordinate", conversionMsg, field)
		e.err = err
		return 0, e
	}
	return c, nil
}

//ParseAtomLine returns the x, y and z coordinates in an ATOM line.
//line is expected to contain its newline, if it had one.
func ParseAtomLine(line string) ([3]float64, error) {
	var c [3]float64
	var err error
	if len(line) < MinLineLen {
		return c, newError(MalformedLineError, "", "ParseAtomLine", shortLineMsg, len(line))
	}
	for i, off := range [3]int{XOffset, YOffset, ZOffset} {
		c[i], err = Coordinate(line, off)
		if err != nil {
			return c, errDecorate(err, "ParseAtomLine")
		}
	}
	return c, nil
}

//splitPieces returns a bufio.SplitFunc that produces lines, including
//their newline, of at most size bytes. Longer lines are split.
func splitPieces(size int) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		lim := len(data)
		if lim > size {
			lim = size
		}
		if i := bytes.IndexByte(data[:lim], '\n'); i >= 0 {
			return i + 1, data[:i+1], nil
		}
		if lim == size || atEOF {
			return lim, data[:lim], nil
		}
		//not enough data yet
		return 0, nil, nil
	}
}

//ReadAtoms reads the ATOM lines from r, which comes from the file name,
//and returns the coordinates. At most opts.MaxAtoms() atoms are read,
//the rest of the input is ignored. It is an error to find no atoms.
//If opts is nil, the default options are used.
func ReadAtoms(r io.Reader, name string, opts *Options) (*AtomSet, error) {
	opts = opts.orDefault()
	maxatoms := opts.MaxAtoms()
	coords := make([]float64, 0, 3*256)
	pdb := bufio.NewScanner(r)
	pdb.Split(splitPieces(MaxLineLen - 1))
	natoms := 0
	for natoms < maxatoms && pdb.Scan() {
		line := pdb.Text()
		if !IsAtomLine(line) {
			continue
		}
		c, err := ParseAtomLine(line)
		if err != nil {
			return nil, errDecorate(withFile(err, name), "ReadAtoms")
		}
		coords = append(coords, c[0], c[1], c[2])
		natoms++
	}
	if err := pdb.Err(); err != nil {
		e := newError(ReadError, name, "ReadAtoms", readMsg, name)
		e.err = err
		return nil, e
	}
	if natoms == 0 {
		return nil, newError(EmptyResultError, name, "ReadAtoms", zeroAtomsMsg, name)
	}
	m, err := v3.NewMatrix(coords)
	if err != nil {
		//can't happen, we always add 3 coordinates at the time.
		panic(err)
	}
	return &AtomSet{Name: name, Coords: m}, nil
}

//PDBFileAtoms opens the PDB file name and reads its atoms with ReadAtoms.
func PDBFileAtoms(name string, opts *Options) (*AtomSet, error) {
	f, err := OpenPDB(name)
	if err != nil {
		return nil, errDecorate(err, "PDBFileAtoms")
	}
	defer f.Close()
	set, err := ReadAtoms(f, name, opts)
	if err != nil {
		return nil, errDecorate(err, "PDBFileAtoms")
	}
	return set, nil
}

//Compressed files

//readCloser closes a decompressor and the file under it.
type readCloser struct {
	io.Reader
	closeq func() error
}

func (r readCloser) Close() error {
	return r.closeq()
}

//OpenPDB opens the file name for reading. Files ending in ".gz" are
//decompressed with gzip, and files ending in ".zst" with Zstandard.
//Any other file is read as plain text.
func OpenPDB(name string) (io.ReadCloser, error) {
	fail := func(err error) (io.ReadCloser, error) {
		e := newError(FileOpenError, name, "OpenPDB", openMsg, name)
		e.err = err
		return nil, e
	}
	f, err := os.Open(name)
	if err != nil {
		return fail(err)
	}
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return fail(err)
		}
		return readCloser{gz, func() error {
			gz.Close()
			return f.Close()
		}}, nil
	case strings.HasSuffix(lower, ".zst"):
		zs, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
		if err != nil {
			f.Close()
			return fail(err)
		}
		return readCloser{zs, func() error {
			//*zstd.Decoder.Close doesn't return an error.
			zs.Close()
			return f.Close()
		}}, nil
	}
	return f, nil
}
