/*
 * gridio.go, part of goEBSD.
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

package gridio

import (
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	ebsd "github.com/rmera/goebsd"
	"github.com/rmera/goebsd/mmap"
)

//Options control the text representation of a grid file.
type Options struct {
	Precision int  //decimals for floating point fields, -1 for the shortest exact representation
	Header    bool //write a first line with the column names
}

//FromConfig returns the options set in a conversion configuration.
func FromConfig(C *ebsd.Config) Options {
	return Options{Precision: C.Precision, Header: C.Header}
}

//approximate length of a rendered row, used to size the buffer.
const rowGuess = 160

//Encode renders rows as CSV, one line per row, with the fields in ebsd.OutputColumns order.
func Encode(rows []ebsd.OutputRow, o Options) []byte {
	buf := make([]byte, 0, rowGuess*(len(rows)+1))
	if o.Header {
		buf = append(buf, strings.Join(ebsd.OutputColumns[:], ",")...)
		buf = append(buf, '\n')
	}
	for i := range rows {
		buf = AppendRow(buf, &rows[i], o.Precision)
	}
	return buf
}

//AppendRow appends the CSV line for r, including its final newline, to buf.
func AppendRow(buf []byte, r *ebsd.OutputRow, prec int) []byte {
	fs := [...]float64{r.X, r.Y, r.Z, r.Phi1, r.Phi, r.Phi2, r.Q0, r.Q1, r.Q2, r.Q3}
	for _, v := range fs {
		buf = strconv.AppendFloat(buf, v, 'f', prec, 64)
		buf = append(buf, ',')
	}
	buf = strconv.AppendInt(buf, int64(r.Phase), 10)
	return append(buf, '\n')
}

//WriteFile writes rows to the file name as CSV. The file is created with its final size
//and filled through a memory mapping.
func WriteFile(name string, rows []ebsd.OutputRow, o Options) error {
	data := Encode(rows, o)
	v, err := mmap.Create(name, len(data))
	if err != nil {
		return ebsd.ErrDecorate(err, "WriteFile")
	}
	copy(v.Bytes(), data)
	if err := v.Release(); err != nil {
		return ebsd.ErrDecorate(err, "WriteFile")
	}
	return nil
}

//WriteZstd writes rows as CSV to the file name, compressed with zstd.
func WriteZstd(name string, rows []ebsd.OutputRow, o Options) error {
	f, err := os.Create(name)
	if err != nil {
		return ebsd.NewError(ebsd.ErrFileOpen, name, "", err, "WriteZstd")
	}
	defer f.Close()
	w, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return ebsd.NewError(ebsd.ErrWrite, name, "can't start the compressor", err, "WriteZstd")
	}
	if _, err := w.Write(Encode(rows, o)); err != nil {
		w.Close()
		return ebsd.NewError(ebsd.ErrWrite, name, "", err, "WriteZstd")
	}
	if err := w.Close(); err != nil {
		return ebsd.NewError(ebsd.ErrWrite, name, "", err, "WriteZstd")
	}
	if err := f.Close(); err != nil {
		return ebsd.NewError(ebsd.ErrWrite, name, "", err, "WriteZstd")
	}
	return nil
}
