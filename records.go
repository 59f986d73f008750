/*
 * records.go, part of goEBSD.
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
	"github.com/rmera/goebsd/orient"
)

//InputRow is one data line of a CTF file. Angles are in degrees.
type InputRow struct {
	Phase     int     //phase index, 0 for non-indexed points
	X, Y      float64 //position on the scan
	Bands     int     //number of detected Kikuchi bands
	ErrorCode int
	Euler1    float64
	Euler2    float64
	Euler3    float64
	MAD       float64 //mean angular deviation
	BC        int     //band contrast
	BS        int     //band slope
}

//Euler returns the orientation of the point in degrees.
func (r InputRow) Euler() orient.Euler[float64] {
	return orient.NewEuler(r.Euler1, r.Euler2, r.Euler3)
}

//OutputRow is one point of the grid file. Angles are in radians and
//Q0..Q3 are the components of the unit quaternion for the same rotation,
//Q0 being the scalar part.
type OutputRow struct {
	X, Y, Z         float64
	Phi1, Phi, Phi2 float64
	Q0, Q1, Q2, Q3  float64
	Phase           int
}

//NColumns is the number of fields in both the input and the output records.
const NColumns = 11

//OutputColumns are the names of the output fields, in file order.
var OutputColumns = [NColumns]string{"x", "y", "z", "phi1", "Phi", "phi2", "q0", "q1", "q2", "q3", "phase"}

//InputColumns are the names of the CTF data columns, in file order.
var InputColumns = [NColumns]string{"Phase", "X", "Y", "Bands", "Error", "Euler1", "Euler2", "Euler3", "MAD", "BC", "BS"}

//Euler returns the orientation of the point, in radians.
func (r OutputRow) Euler() orient.Euler[float64] {
	return orient.NewEuler(r.Phi1, r.Phi, r.Phi2)
}

//Quaternion returns the orientation of the point as a quaternion.
func (r OutputRow) Quaternion() orient.Quaternion {
	return orient.Quaternion{Real: r.Q0, Imag: r.Q1, Jmag: r.Q2, Kmag: r.Q3}
}
