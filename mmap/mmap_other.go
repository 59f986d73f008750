//go:build !unix

/*
 * mmap_other.go, part of goEBSD.
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

package mmap

import (
	"io"
	"os"
)

//Zerocopy is true when views are actual memory mappings of the files.
//Here the contents are copied to and from memory.
const Zerocopy = false

func mapFile(f *os.File, size int, writable bool) ([]byte, error) {
	data := make([]byte, size)
	if writable {
		return data, nil
	}
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, err
	}
	return data, nil
}

func syncFile(f *os.File, data []byte) error {
	_, err := f.WriteAt(data, 0)
	return err
}

func unmapFile(data []byte) error {
	return nil
}
