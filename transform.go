/*
 * transform.go, part of goEBSD.
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
	"runtime"
	"sync"

	"github.com/rmera/goebsd/orient"
)

//minChunk is the smallest number of rows given to a single goroutine.
const minChunk = 1024

//Convert maps a single input row to its output row, placing it at elevation z.
//The angles are converted from degrees to radians without normalization, and
//the quaternion is obtained from them with orient.EulerToQuaternion.
func Convert(in InputRow, z float64) OutputRow {
	eu := in.Euler().Radians()
	q := orient.EulerToQuaternion(eu)
	return OutputRow{
		X:     in.X,
		Y:     in.Y,
		Z:     z,
		Phi1:  eu.Phi1,
		Phi:   eu.Phi,
		Phi2:  eu.Phi2,
		Q0:    q.Real,
		Q1:    q.Imag,
		Q2:    q.Jmag,
		Q3:    q.Kmag,
		Phase: in.Phase,
	}
}

//Transform converts rows concurrently and returns a new slice where the ith element
//corresponds to rows[i]. All output rows get the elevation z. The work is split into
//contiguous chunks, one per goroutine, with at most workers goroutines (if workers<1,
//GOMAXPROCS is used). Each goroutine only writes to its own chunk of the output.
//rows is not modified.
func Transform(rows []InputRow, z float64, workers int) []OutputRow {
	if len(rows) == 0 {
		return []OutputRow{}
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (len(rows) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}
	return transformChunked(rows, z, chunk)
}

//transformChunked converts rows using one goroutine per chunk rows.
func transformChunked(rows []InputRow, z float64, chunk int) []OutputRow {
	out := make([]OutputRow, len(rows))
	var wg sync.WaitGroup
	for start := 0; start < len(rows); start += chunk {
		end := min(start+chunk, len(rows))
		wg.Add(1)
		go func(in []InputRow, dest []OutputRow) {
			defer wg.Done()
			for i, r := range in {
				dest[i] = Convert(r, z)
			}
		}(rows[start:end], out[start:end])
	}
	wg.Wait()
	return out
}
