/*
 * mmap.go, part of goEBSD.
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
	"fmt"
	"log"
	"os"

	ebsd "github.com/rmera/goebsd"
)

//View is a byte view of a whole file. Views returned by Open are read-only,
//views returned by Create can be written through Bytes(). A View is meant to be used
//by one goroutine at a time, and must be released with Release.
type View struct {
	name     string
	f        *os.File
	data     []byte
	mapped   bool
	writable bool
	released bool
}

//Open maps the file name for reading and returns a view of all its contents.
//The error returned, if any, is an *ebsd.Error of kind ErrFileOpen, ErrSizeQuery
//or ErrMapping, depending on the step that failed. Whatever was acquired before
//the failure is released before returning.
func Open(name string) (*View, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fail(ebsd.ErrFileOpen, name, err, "Open")
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fail(ebsd.ErrSizeQuery, name, err, "Open")
	}
	size := info.Size()
	if int64(int(size)) != size {
		f.Close()
		return nil, fail(ebsd.ErrSizeQuery, name, fmt.Errorf("file too large to map: %d bytes", size), "Open")
	}
	V := &View{name: name, f: f}
	if size == 0 {
		//there is nothing to map
		return V, nil
	}
	V.data, err = mapFile(f, int(size), false)
	if err != nil {
		f.Close()
		return nil, fail(ebsd.ErrMapping, name, err, "Open")
	}
	V.mapped = true
	return V, nil
}

//Create creates (or truncates) the file name, sets its size to exactly size bytes,
//and maps it for writing. Errors follow the same rules as in Open.
func Create(name string, size int) (*View, error) {
	if size < 0 {
		return nil, fail(ebsd.ErrSizeQuery, name, fmt.Errorf("negative size %d", size), "Create")
	}
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fail(ebsd.ErrFileOpen, name, err, "Create")
	}
	if err := f.Truncate(int64(size)); err != nil {
		f.Close()
		return nil, fail(ebsd.ErrSizeQuery, name, err, "Create")
	}
	V := &View{name: name, f: f, writable: true}
	if size == 0 {
		return V, nil
	}
	V.data, err = mapFile(f, size, true)
	if err != nil {
		f.Close()
		return nil, fail(ebsd.ErrMapping, name, err, "Create")
	}
	V.mapped = true
	return V, nil
}

//fail logs the failure as a diagnostic and returns the corresponding error.
func fail(kind error, name string, cause error, caller string) error {
	log.Printf("goEBSD/mmap: %s %s: %v", kind, name, cause)
	return ebsd.NewError(kind, name, "", cause, caller)
}

//Bytes returns the contents of the file. The slice is only valid until Release is called,
//and must not be written to unless the view is writable.
func (V *View) Bytes() []byte {
	return V.data
}

//Len returns the size of the view in bytes.
func (V *View) Len() int {
	return len(V.data)
}

//Name returns the name of the file the view was acquired for.
func (V *View) Name() string {
	return V.name
}

//Writable returns true if the view was obtained with Create.
func (V *View) Writable() bool {
	return V.writable
}

//Released returns true once Release has been called.
func (V *View) Released() bool {
	return V.released
}

//Flush makes sure the contents of a writable view have reached the file.
//It does nothing for read-only or released views.
func (V *View) Flush() error {
	if V.released || !V.writable || !V.mapped {
		return nil
	}
	if err := syncFile(V.f, V.data); err != nil {
		return ebsd.NewError(ebsd.ErrWrite, V.name, "", err, "Flush")
	}
	return nil
}

//Release unmaps the view and closes the file, in that order. Writable views are flushed
//first. Release can be called any number of times, only the first call does anything.
//It returns the first error found, but always tries to release everything.
func (V *View) Release() error {
	if V == nil || V.released {
		return nil
	}
	V.released = true
	var first error
	if V.mapped {
		if V.writable {
			if err := syncFile(V.f, V.data); err != nil {
				first = ebsd.NewError(ebsd.ErrWrite, V.name, "", err, "Release")
			}
		}
		if err := unmapFile(V.data); err != nil && first == nil {
			first = ebsd.NewError(ebsd.ErrMapping, V.name, "can't unmap", err, "Release")
		}
		V.mapped = false
	}
	V.data = nil
	if V.f != nil {
		if err := V.f.Close(); err != nil && first == nil {
			first = ebsd.NewError(ebsd.ErrFileOpen, V.name, "can't close", err, "Release")
		}
		V.f = nil
	}
	return first
}
