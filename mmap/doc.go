/*
 * doc.go, part of goEBSD.
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

/*Package mmap gives access to whole files as byte slices through memory mappings.

A View is acquired with Open (read-only) or Create (read-write, with a fixed size), and
released with Release. Acquisition either returns a fully usable view or an error, never
a partially acquired one: the file handle and mapping obtained before a failure are
released before the error is returned. On systems without mmap the same API is provided
by reading the file into memory and writing it back on Release.*/
package mmap
