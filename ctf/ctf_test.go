/*
 * ctf_test.go, part of goEBSD.
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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	ebsd "github.com/rmera/goebsd"
)

var twoPhaseRows = []ebsd.InputRow{
	{Phase: 1, X: 0, Y: 1, Bands: 5, ErrorCode: 0, Euler1: 10, Euler2: 20, Euler3: 30, MAD: 0.5, BC: 100, BS: 50},
	{Phase: 2, X: 0.5, Y: 1, Bands: 8, ErrorCode: 0, Euler1: 120.5, Euler2: 45.25, Euler3: 200, MAD: 0.32, BC: 140, BS: 160},
	{Phase: 0, X: 1, Y: 1, Bands: 0, ErrorCode: 3, Euler1: 0, Euler2: 0, Euler3: 0, MAD: 0, BC: 12, BS: 0},
	{Phase: 1, X: 0, Y: 1.5, Bands: 7, ErrorCode: 0, Euler1: 359, Euler2: 90, Euler3: 1, MAD: 0.71, BC: 120, BS: 150},
	{Phase: 2, X: 0.5, Y: 1.5, Bands: 9, ErrorCode: 0, Euler1: 45, Euler2: 54.7356, Euler3: 45, MAD: 0.29, BC: 180, BS: 170},
	{Phase: 1, X: 1, Y: 1.5, Bands: 6, ErrorCode: 0, Euler1: 270, Euler2: 135, Euler3: 90, MAD: 1.1, BC: 90, BS: 80},
}

func TestTable(Te *testing.T) {
	T := BuildTable()
	if T.Len() != 10 {
		Te.Errorf("expected 10 entries, got %d", T.Len())
	}
	for p := 1; p <= 10; p++ {
		P, err := T.Lookup(p)
		if err != nil {
			Te.Fatalf("Lookup(%d): %v", p, err)
		}
		if P.Phases() != p || P.HeaderLines() != HeaderBase+p {
			Te.Errorf("Lookup(%d) returned the parser for %d phases and %d header lines", p, P.Phases(), P.HeaderLines())
		}
		P2, _ := T.Lookup(p)
		if P2 != P {
			Te.Errorf("Lookup(%d) returned a different parser on the second call", p)
		}
	}
	for _, p := range []int{0, 11, -3} {
		P, err := T.Lookup(p)
		if !errors.Is(err, ebsd.ErrRange) || P != nil {
			Te.Errorf("Lookup(%d): expected ErrRange, got %v, %v", p, P, err)
		}
	}
}

func TestLookupConcurrent(Te *testing.T) {
	var wg sync.WaitGroup
	errs := make([]error, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := i%10 + 1
			P, err := Lookup(p)
			if err == nil && P.Phases() != p {
				err = fmt.Errorf("wanted %d phases, got %d", p, P.Phases())
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			Te.Errorf("goroutine %d: %v", i, err)
		}
	}
}

func TestReadFile(Te *testing.T) {
	P, _ := Lookup(2)
	for _, name := range []string{"testdata/two_phase.ctf", "testdata/two_phase.ctf.gz", "testdata/two_phase.ctf.zst"} {
		S, err := ReadFile(name, P)
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		if diff := cmp.Diff(twoPhaseRows, S.Rows); diff != "" {
			Te.Errorf("%s: rows differ (-want +got):\n%s", name, diff)
		}
		if S.Header["XCells"] != "3" || S.Header["YStep"] != "0.5" || S.Header["Phases"] != "2" || S.Header["KV"] != "20" {
			Te.Errorf("%s: wrong header %v", name, S.Header)
		}
		if len(S.Phases) != 2 || S.PhaseName(1) != "Iron fcc" || S.PhaseName(2) != "Iron bcc" || S.PhaseName(3) != "" {
			Te.Errorf("%s: wrong phases %q", name, S.Phases)
		}
	}
}

func TestReadVariants(Te *testing.T) {
	P, _ := Lookup(1)
	S, err := ReadFile("testdata/one_phase.ctf", P)
	if err != nil {
		Te.Fatal(err)
	}
	want := []ebsd.InputRow{twoPhaseRows[0], twoPhaseRows[2], twoPhaseRows[3], twoPhaseRows[5]}
	if diff := cmp.Diff(want, S.Rows); diff != "" {
		Te.Errorf("one phase file: rows differ (-want +got):\n%s", diff)
	}
	P, _ = Lookup(3)
	S, err = ReadFile("testdata/three_phase_crlf.ctf", P)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(twoPhaseRows, S.Rows); diff != "" {
		Te.Errorf("CRLF file: rows differ (-want +got):\n%s", diff)
	}
	if S.PhaseName(3) != "Aluminium" || S.Header["Prj"] != `C:\data\steel_A.cpr` {
		Te.Errorf("CRLF file: wrong header %v %q", S.Header, S.Phases)
	}
	//a bare header count works the same as the table entry
	S2, err := ReadFile("testdata/three_phase_crlf.ctf", NewParser(HeaderBase+3))
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(S.Rows, S2.Rows); diff != "" {
		Te.Errorf("NewParser and ForPhases disagree:\n%s", diff)
	}
}

//Reading a file with a variant for fewer phases leaves header lines among the records.
func TestWrongVariant(Te *testing.T) {
	P, _ := Lookup(1)
	S, err := ReadFile("testdata/two_phase.ctf", P)
	var pe *ParseError
	if !errors.As(err, &pe) {
		Te.Fatalf("expected a parse error, got %v", err)
	}
	if pe.Line != 16 || pe.Column != 1 || pe.Text != "Phase" {
		Te.Errorf("the column names line should be the first bad record, got %+v", pe)
	}
	if len(S.Rows) != 0 {
		Te.Errorf("no row should have been read, got %d", len(S.Rows))
	}
}

func TestParseErrors(Te *testing.T) {
	P, _ := Lookup(2)
	S, err := ReadFile("testdata/bad_field.ctf", P)
	var pe *ParseError
	if !errors.As(err, &pe) {
		Te.Fatalf("expected a *ParseError, got %v", err)
	}
	if pe.Line != 20 || pe.Column != 7 || pe.Text != "ninety" || pe.FileName() != "testdata/bad_field.ctf" {
		Te.Errorf("wrong error location: %+v", pe)
	}
	if !errors.Is(err, ebsd.ErrParse) {
		Te.Errorf("error doesn't match ErrParse: %v", err)
	}
	if diff := cmp.Diff(twoPhaseRows[:3], S.Rows); diff != "" {
		Te.Errorf("rows before the error were altered:\n%s", diff)
	}

	S, err = ReadFile("testdata/bad_columns.ctf", P)
	if !errors.As(err, &pe) {
		Te.Fatalf("expected a *ParseError, got %v", err)
	}
	if pe.Line != 19 || pe.Column != 0 || !strings.Contains(pe.Error(), "found 10") {
		Te.Errorf("wrong error: %v", pe)
	}
	if len(S.Rows) != 2 {
		Te.Errorf("expected the 2 rows before the error, got %d", len(S.Rows))
	}
}

func TestReadMissing(Te *testing.T) {
	P, _ := Lookup(1)
	_, err := ReadFile("testdata/nothere.ctf", P)
	if !errors.Is(err, ebsd.ErrFileOpen) {
		Te.Errorf("expected ErrFileOpen, got %v", err)
	}
}

func TestReadCorrupt(Te *testing.T) {
	P, _ := Lookup(2)
	for _, name := range []string{"scan.ctf.gz", "scan.ctf.zst"} {
		path := filepath.Join(Te.TempDir(), name)
		if err := os.WriteFile(path, []byte("this is not compressed data\n"), 0o644); err != nil {
			Te.Fatal(err)
		}
		_, err := ReadFile(path, P)
		if !errors.Is(err, ebsd.ErrParse) {
			Te.Errorf("%s: expected a parse error, got %v", name, err)
			continue
		}
		var pe *ParseError
		if errors.As(err, &pe) || strings.Contains(err.Error(), "line 0") {
			Te.Errorf("%s: a corrupt file has no line to report: %v", name, err)
		}
		var ee *ebsd.Error
		if !errors.As(err, &ee) || ee.FileName() != path {
			Te.Errorf("%s: the error should name the file: %v", name, err)
		}
	}
}

func TestParseShortHeader(Te *testing.T) {
	_, err := ForPhases(1).Parse([]byte("Channel Text File\nPhases\t1\n"))
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Line != 3 {
		Te.Errorf("expected an error at line 3, got %v", err)
	}
	S, err := NewParser(1).Parse([]byte("Phase X Y\n\n 1 0 0 5 0 1 2 3 0.1 10 20 \n\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if len(S.Rows) != 1 || S.Rows[0].BS != 20 || S.Rows[0].Euler3 != 3 {
		Te.Errorf("wrong rows %v", S.Rows)
	}
}

func TestCompressionOf(Te *testing.T) {
	cases := map[string]Compression{"a.ctf": Plain, "a.ctf.gz": Gzip, "a.CTF.ZST": Zstd, "a.zstd": Zstd, "a": Plain}
	for name, c := range cases {
		if got := CompressionOf(name); got != c {
			Te.Errorf("CompressionOf(%q) = %v, want %v", name, got, c)
		}
	}
}
