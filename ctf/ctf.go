/*
 * ctf.go, part of goEBSD.
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
	"bytes"
	"fmt"
	"log"
	"strconv"
	"strings"
	"unsafe"

	ebsd "github.com/rmera/goebsd"
)

//HeaderBase is the number of header lines of a CTF file that don't depend on the
//number of phases: the 13 lines of the preamble (from "Channel Text File" to the
//"Phases" line) plus the line with the column names. A file with n phases has
//HeaderBase+n header lines, one description line per phase.
const HeaderBase = 14

//Parser reads the records of a CTF file.
type Parser interface {
	//Phases returns the number of phase lines the parser expects, or 0 if
	//the parser was built from a bare header line count.
	Phases() int
	//HeaderLines returns the number of lines skipped before the first record.
	HeaderLines() int
	//Parse parses a whole CTF file.
	Parse(data []byte) (*Scan, error)
}

//Scan is the contents of a CTF file.
type Scan struct {
	Header map[string]string //key-value pairs from the preamble
	Phases []string          //the phase description lines, as they are in the file
	Rows   []ebsd.InputRow
}

//PhaseName returns the name of the ith phase (1-based, as in the Phase column)
//or an empty string if the file doesn't have it.
func (S *Scan) PhaseName(i int) string {
	if i < 1 || i > len(S.Phases) {
		return ""
	}
	f := strings.Split(S.Phases[i-1], "\t")
	if len(f) < 3 {
		return ""
	}
	return strings.TrimSpace(f[2])
}

//Format is a Parser for files with a fixed number of header lines.
type Format struct {
	phases int
	header int
}

//NewParser returns a parser that skips headerLines lines before the first record.
//Unlike the parsers from the phase table, it is not limited to 10 phases.
func NewParser(headerLines int) *Format {
	p := headerLines - HeaderBase
	if p < 0 {
		p = 0
	}
	return &Format{phases: p, header: headerLines}
}

//ForPhases returns a parser for files with the given number of phases.
func ForPhases(phases int) *Format {
	return &Format{phases: phases, header: HeaderBase + phases}
}

//Phases returns the number of phases the parser expects.
func (F *Format) Phases() int { return F.phases }

//HeaderLines returns the number of lines before the first record.
func (F *Format) HeaderLines() int { return F.header }

func (F *Format) String() string {
	return fmt.Sprintf("CTF/%d phases/%d header lines", F.phases, F.header)
}

//Parse reads the header and records from data. Empty lines after the header are ignored.
//Upon failure, it returns a *ParseError and the Scan with the records read
//before the offending line.
func (F *Format) Parse(data []byte) (*Scan, error) {
	S := &Scan{Header: make(map[string]string)}
	lineno := 0
	//the header
	for lineno < F.header {
		if len(data) == 0 {
			return S, &ParseError{Line: lineno + 1, msg: fmt.Sprintf("file ended inside the header, which should have %d lines", F.header)}
		}
		var line []byte
		line, data = nextLine(data)
		lineno++
		switch {
		case lineno == F.header:
			//the column names, nothing to do
		case F.phases > 0 && lineno > F.header-1-F.phases:
			S.Phases = append(S.Phases, string(line))
		default:
			headerPairs(line, S.Header)
		}
	}
	F.checkPhases(S)
	//Records. The fields are not copied, so nothing that references them can
	//leave this function.
	S.Rows = make([]ebsd.InputRow, 0, bytes.Count(data, []byte{'\n'})+1)
	var fields [ebsd.NColumns][]byte
	for len(data) > 0 {
		var line []byte
		line, data = nextLine(data)
		lineno++
		n, ok := splitFields(line, &fields)
		if n == 0 {
			continue
		}
		if !ok {
			return S, &ParseError{Line: lineno, Text: string(line), msg: fmt.Sprintf("expected %d columns, found %d", ebsd.NColumns, n)}
		}
		r, err := parseRow(&fields)
		if err != nil {
			err.Line = lineno
			return S, err
		}
		S.Rows = append(S.Rows, r)
	}
	return S, nil
}

//checkPhases logs a heads-up if the file declares a number of phases different from
//the one the parser expects. The header size is not taken from the file, so
//parsing continues.
func (F *Format) checkPhases(S *Scan) {
	declared, ok := S.Header["Phases"]
	if !ok || F.phases == 0 {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(declared))
	if err == nil && n != F.phases {
		log.Printf("goEBSD/ctf: the file declares %d phases, but it is read as a %d-phase file", n, F.phases)
	}
}

//nextLine returns the first line of data, without the line terminator, and the rest of data.
func nextLine(data []byte) (line, rest []byte) {
	i := bytes.IndexByte(data, '\n')
	if i < 0 {
		line, rest = data, nil
	} else {
		line, rest = data[:i], data[i+1:]
	}
	return bytes.TrimSuffix(line, []byte{'\r'}), rest
}

//headerPairs adds the key-value pairs of a preamble line to m. Most lines are
//a key and a value separated by a tab. The line that starts with "Euler angles refer to"
//has a sentence and then several pairs.
func headerPairs(line []byte, m map[string]string) {
	f := strings.Split(strings.TrimSpace(string(line)), "\t")
	if len(f) == 0 || f[0] == "" {
		return
	}
	if strings.HasSuffix(f[0], "!") {
		for i := 1; i+1 < len(f); i += 2 {
			m[f[i]] = f[i+1]
		}
		return
	}
	m[f[0]] = strings.Join(f[1:], "\t")
}

//splitFields puts the whitespace-separated fields of line in fields, and returns the
//number of fields found, and whether it was exactly NColumns. Counting stops after
//NColumns+1.
func splitFields(line []byte, fields *[ebsd.NColumns][]byte) (int, bool) {
	n := 0
	i := 0
	for {
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		if i == len(line) {
			break
		}
		start := i
		for i < len(line) && !isSpace(line[i]) {
			i++
		}
		if n == ebsd.NColumns {
			return n + 1, false
		}
		fields[n] = line[start:i]
		n++
	}
	return n, n == ebsd.NColumns
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\v' || b == '\f'
}

//str returns a string sharing memory with b.
func str(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

//parseRow parses the fields of a record in CTF column order.
func parseRow(f *[ebsd.NColumns][]byte) (ebsd.InputRow, *ParseError) {
	var r ebsd.InputRow
	ints := [...]struct {
		col int
		dst *int
	}{{0, &r.Phase}, {3, &r.Bands}, {4, &r.ErrorCode}, {9, &r.BC}, {10, &r.BS}}
	floats := [...]struct {
		col int
		dst *float64
	}{{1, &r.X}, {2, &r.Y}, {5, &r.Euler1}, {6, &r.Euler2}, {7, &r.Euler3}, {8, &r.MAD}}
	for _, v := range ints {
		n, err := strconv.Atoi(str(f[v.col]))
		if err != nil {
			return r, fieldError(f, v.col, err)
		}
		*v.dst = n
	}
	for _, v := range floats {
		x, err := strconv.ParseFloat(str(f[v.col]), 64)
		if err != nil {
			return r, fieldError(f, v.col, err)
		}
		*v.dst = x
	}
	return r, nil
}

//fieldError builds the error for a field that can't be parsed. The strconv error
//holds a string backed by the file's memory, so only its inner error is kept, and
//the text is copied.
func fieldError(f *[ebsd.NColumns][]byte, col int, err error) *ParseError {
	if ne, ok := err.(*strconv.NumError); ok {
		err = ne.Err
	}
	return &ParseError{
		Column: col + 1,
		Text:   string(f[col]),
		msg:    fmt.Sprintf("can't parse %s", ebsd.InputColumns[col]),
		cause:  err,
	}
}
