/*
 * reader.go, part of goEBSD.
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
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	ebsd "github.com/rmera/goebsd"
	"github.com/rmera/goebsd/mmap"
)

//Compression of an input file, as deduced from its extension.
type Compression int

const (
	Plain Compression = iota
	Gzip
	Zstd
)

//CompressionOf returns the compression of the file name: Gzip for ".gz",
//Zstd for ".zst" and ".zstd" and Plain for anything else.
func CompressionOf(name string) Compression {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	}
	return Plain
}

//ReadFile maps the file name and parses it with p. Files compressed with gzip or zstd
//are decompressed in memory first. Errors from the mapping keep their kind
//(ebsd.ErrFileOpen, ErrSizeQuery, ErrMapping), malformed contents give a *ParseError,
//and a corrupt compressed file an *ebsd.Error of kind ErrParse.
func ReadFile(name string, p Parser) (*Scan, error) {
	v, err := mmap.Open(name)
	if err != nil {
		return nil, ebsd.ErrDecorate(err, "ReadFile")
	}
	defer v.Release()
	data := v.Bytes()
	if c := CompressionOf(name); c != Plain {
		data, err = decompress(data, c)
		if err != nil {
			return nil, ebsd.NewError(ebsd.ErrParse, name, "can't decompress", err, "ReadFile")
		}
	}
	S, err := p.Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.File = name
		}
		return S, ebsd.ErrDecorate(err, "ReadFile")
	}
	return S, nil
}

func decompress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case Gzip:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	case Zstd:
		d, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer d.Close()
		return d.DecodeAll(data, nil)
	}
	return data, nil
}
