/*
 * interfaces.go, part of anaprot.
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

package chem

import (
	"errors"
	"fmt"
)

//Errors

//Decorator is the interface for errors that all packages in this module implement. The Decorate method allows to add and retrieve info from the
//error, without changing its type or wrapping it around something else.
type Decorator interface {
	Error() string
	//Decorate adds the name of a function in the calling stack, plus, optionally, extra information in the format
	//"FunctionName: Extra info". It returns the resulting slice. An empty string adds nothing.
	Decorate(string) []string
	Critical() bool
}

//ErrorKind tells what went wrong while analyzing a file.
type ErrorKind int

const (
	UsageError ErrorKind = iota
	FileOpenError
	ReadError
	MalformedLineError
	CoordinateParseError
	EmptyResultError
)

func (k ErrorKind) String() string {
	switch k {
	case UsageError:
		return "usage error"
	case FileOpenError:
		return "file open error"
	case ReadError:
		return "read error"
	case MalformedLineError:
		return "malformed line"
	case CoordinateParseError:
		return "coordinate parse error"
	case EmptyResultError:
		return "empty result"
	}
	return fmt.Sprintf("unknown error kind %d", int(k))
}

//Messages, as printed by AnalyzeProtein.
const (
	usageMsg      = "Usage: AnalyzeProtein <pdb1> <pdb2> ..."
	openMsg       = "Error opening file: %s"
	readMsg       = "Error reading file: %s"
	shortLineMsg  = "ATOM line is too short %d characters"
	conversionMsg = "Error in coordinate conversion %s!"
	zeroAtomsMsg  = "Error - 0 atoms were found in the file %s"
)

//Error is the error type returned by the functions of this package.
//The message is exactly what AnalyzeProtein prints, without the trailing newline.
type Error struct {
	message  string
	//the input file that has problems, or empty string if none.
	filename string
	kind     ErrorKind
	deco     []string
	critical bool
	err      error
}

func newError(kind ErrorKind, filename string, caller string, format string, args ...interface{}) *Error {
	return &Error{
		message:  fmt.Sprintf(format, args...),
		filename: filename,
		kind:     kind,
		deco:     []string{caller},
		critical: true,
	}
}

//ErrUsage returns the error for a run without input files.
func ErrUsage() *Error {
	return newError(UsageError, "", "ErrUsage", usageMsg)
}

func (err *Error) Error() string { return err.message }

//Kind returns the kind of the error
func (err *Error) Kind() ErrorKind { return err.kind }

//FileName returns the file that was being read when the error happened, if any
func (err *Error) FileName() string { return err.filename }

//Critical returns true if the error should stop the analysis of the file.
//All the errors of AnalyzeProtein are critical.
func (err *Error) Critical() bool { return err.critical }

//Unwrap returns the error from the standard library or a dependency that
//caused this one, or nil.
func (err *Error) Unwrap() error { return err.err }

//Decorate adds deco to the list of callers of the error
//and returns the list.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate decorates err with caller if it implements Decorator,
//and returns it.
func errDecorate(err error, caller string) error {
	var d Decorator
	if errors.As(err, &d) {
		d.Decorate(caller)
	}
	return err
}

//withFile sets the file name of err, if it is an *Error, and returns it.
func withFile(err error, name string) error {
	var e *Error
	if errors.As(err, &e) {
		e.filename = name
	}
	return err
}

//IsKind returns true if err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == kind
	}
	return false
}
