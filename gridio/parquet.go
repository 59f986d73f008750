/*
 * parquet.go, part of goEBSD.
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
	"github.com/parquet-go/parquet-go"
	ebsd "github.com/rmera/goebsd"
)

//Record is the Parquet schema of a grid point. The column names are those of the CSV header.
type Record struct {
	X     float64 `parquet:"x"`
	Y     float64 `parquet:"y"`
	Z     float64 `parquet:"z"`
	Phi1  float64 `parquet:"phi1"`
	Phi   float64 `parquet:"Phi"`
	Phi2  float64 `parquet:"phi2"`
	Q0    float64 `parquet:"q0"`
	Q1    float64 `parquet:"q1"`
	Q2    float64 `parquet:"q2"`
	Q3    float64 `parquet:"q3"`
	Phase int64   `parquet:"phase"`
}

//NewRecord returns the Parquet record for r.
func NewRecord(r ebsd.OutputRow) Record {
	return Record{
		X: r.X, Y: r.Y, Z: r.Z,
		Phi1: r.Phi1, Phi: r.Phi, Phi2: r.Phi2,
		Q0: r.Q0, Q1: r.Q1, Q2: r.Q2, Q3: r.Q3,
		Phase: int64(r.Phase),
	}
}

//Row returns the grid point stored in R.
func (R Record) Row() ebsd.OutputRow {
	return ebsd.OutputRow{
		X: R.X, Y: R.Y, Z: R.Z,
		Phi1: R.Phi1, Phi: R.Phi, Phi2: R.Phi2,
		Q0: R.Q0, Q1: R.Q1, Q2: R.Q2, Q3: R.Q3,
		Phase: int(R.Phase),
	}
}

//WriteParquet writes rows to the file name as a Parquet table with the Record schema.
func WriteParquet(name string, rows []ebsd.OutputRow) error {
	recs := make([]Record, len(rows))
	for i, r := range rows {
		recs[i] = NewRecord(r)
	}
	if err := parquet.WriteFile(name, recs); err != nil {
		return ebsd.NewError(ebsd.ErrWrite, name, "", err, "WriteParquet")
	}
	return nil
}

//ReadParquet reads a file written by WriteParquet.
func ReadParquet(name string) ([]ebsd.OutputRow, error) {
	recs, err := parquet.ReadFile[Record](name)
	if err != nil {
		return nil, ebsd.NewError(ebsd.ErrParse, name, "", err, "ReadParquet")
	}
	rows := make([]ebsd.OutputRow, len(recs))
	for i, r := range recs {
		rows[i] = r.Row()
	}
	return rows, nil
}
