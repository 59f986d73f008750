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

/*Package ebsd is the main package of goEBSD. It converts EBSD orientation maps, as exported
by the Channel Text File (CTF) format, into a fixed schema grid file where each scan point
carries its position, an elevation, its orientation as Bunge Euler angles in radians and
the equivalent unit quaternion, and its phase.


	**goEBSD packages**


    ebsd (this package): the input and output records, the parallel orientation transform,
	the error kinds shared by all packages and the run configuration.

    orient: Euler angles and quaternions, and the conversions between them.

    mmap: read and write access to files through memory mappings.

    ctf: the reader for CTF files, and the table of parsers for files with 1 to 10 phases.

    gridio: the CSV writer (plus zstd and Parquet variants).

    scanstat, gridplot: summary statistics and phase maps of a converted scan.

    grid: the whole conversion, from an input file to the grid file.


The records are plain structs. An input record is never modified after it is read,
and an output record is never modified after the transform produces it.*/
package ebsd
