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

/*Package ctf reads Channel Text Files (.ctf), the EBSD map format exported by Oxford
Instruments software.

A CTF file has a header whose size depends on the number of phases indexed in the
map, followed by one tab-separated line per scan point. The number of header lines can't
be known without reading the header, so the reader is selected from the number of phases,
which the caller gives:

	p, err := ctf.Lookup(2)
	if err != nil {
		//phase count out of range
	}
	scan, err := ctf.ReadFile("steel_A.ctf", p)

Files are accessed through memory mappings (package mmap). Files ending in .gz or .zst are
decompressed in memory before parsing.
*/
package ctf
