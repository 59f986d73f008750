/*
 * outname.go, part of goEBSD.
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

package ebsd

import (
	"path/filepath"
	"strings"
)

//GridExt is the extension of the grid files.
const GridExt = ".csv"

//OutputName returns the name of the grid file for the input file name:
//the part of the file name before its first '.', with GridExt appended.
//Only the file name is truncated, dots in the directory part are kept, so
//"a.b.ctf" gives "a.csv" and "run.2/scan.ctf" gives "run.2/scan.csv".
func OutputName(input string) string {
	dir, base := filepath.Split(input)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return dir + base + GridExt
}
