/*
 * errors.go, part of goEBSD.
 *
 * Copyright 2025 The goEBSD authors
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

package ctf

import (
	"fmt"

	ebsd "github.com/rmera/goebsd"
)

//ParseError is returned when a CTF file has a malformed line. It matches ebsd.ErrParse.
type ParseError struct {
	File   string //empty if the data didn't come from a file
	Line   int    //1-based
	Column int    //1-based, 0 if the problem is the whole line
	Text   string //the offending field or line
	msg    string
	cause  error
	deco   []string
}

func (E *ParseError) Error() string {
	where := fmt.Sprintf("line %d", E.Line)
	if E.Column > 0 {
		where = fmt.Sprintf("%s, column %d", where, E.Column)
	}
	msg := fmt.Sprintf("%s: %s", where, E.msg)
	if E.Text != "" {
		msg = fmt.Sprintf("%s (%q)", msg, E.Text)
	}
	if E.cause != nil {
		msg = msg + ": " + E.cause.Error()
	}
	return fmt.Sprintf("ctf file %s error: %s", E.File, msg)
}

//Unwrap allows errors.Is(err, ebsd.ErrParse) and access to the strconv error, if any.
func (E *ParseError) Unwrap() []error {
	if E.cause == nil {
		return []error{ebsd.ErrParse}
	}
	return []error{ebsd.ErrParse, E.cause}
}

//Decorate adds the caller to the list of functions the error went through.
func (E *ParseError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Critical is always true, a malformed line stops the reading.
func (E *ParseError) Critical() bool { return true }

//FileName returns the file where the error happened.
func (E *ParseError) FileName() string { return E.File }
