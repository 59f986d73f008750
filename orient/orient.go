/*
 * orient.go, part of goEBSD.
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

package orient

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

//Angle conversion factors. Deg2Rad takes degrees to radians, Rad2Deg does the opposite.
const (
	Deg2Rad = math.Pi / 180.0
	Rad2Deg = 180.0 / math.Pi
)

//values of chi (see QuaternionToEuler) below this are considered zero.
const appzero = 1e-12

//Float is the set of types an Euler triplet can be stored in.
type Float interface {
	~float32 | ~float64
}

//Euler is a set of Bunge (ZXZ) Euler angles. The unit is not part of the type:
//it is up to the caller to keep track of degrees and radians. The constructors
//and functions in this package work in radians unless stated otherwise.
type Euler[T Float] struct {
	Phi1 T
	Phi  T
	Phi2 T
}

//NewEuler returns the Euler triplet (phi1, Phi, phi2)
func NewEuler[T Float](phi1, Phi, phi2 T) Euler[T] {
	return Euler[T]{Phi1: phi1, Phi: Phi, Phi2: phi2}
}

//EulerFromArray builds an Euler triplet from a 3-element array in (phi1, Phi, phi2) order.
func EulerFromArray[T Float](a [3]T) Euler[T] {
	return Euler[T]{Phi1: a[0], Phi: a[1], Phi2: a[2]}
}

//Array returns the angles as a 3-element array in (phi1, Phi, phi2) order.
func (E Euler[T]) Array() [3]T {
	return [3]T{E.Phi1, E.Phi, E.Phi2}
}

//At returns the ith angle. It panics if i is not 0, 1 or 2.
func (E Euler[T]) At(i int) T {
	switch i {
	case 0:
		return E.Phi1
	case 1:
		return E.Phi
	case 2:
		return E.Phi2
	}
	panic("goEBSD/orient: Euler index out of range")
}

//Scale returns the triplet with each angle multiplied by f.
func (E Euler[T]) Scale(f T) Euler[T] {
	return Euler[T]{Phi1: E.Phi1 * f, Phi: E.Phi * f, Phi2: E.Phi2 * f}
}

//Radians returns E, which is assumed to be in degrees, in radians.
//No normalization of the angles is performed.
func (E Euler[T]) Radians() Euler[T] {
	return E.Scale(T(Deg2Rad))
}

//Degrees returns E, which is assumed to be in radians, in degrees.
func (E Euler[T]) Degrees() Euler[T] {
	return E.Scale(T(Rad2Deg))
}

//Convert returns a copy of e stored in a different floating point type.
//Converting to float32 loses precision, converting to float64 is exact.
func Convert[U, T Float](e Euler[T]) Euler[U] {
	return Euler[U]{Phi1: U(e.Phi1), Phi: U(e.Phi), Phi2: U(e.Phi2)}
}

//Quaternion is a rotation quaternion. Real is the scalar part (q0), and Imag, Jmag and Kmag
//are q1, q2 and q3.
type Quaternion = quat.Number

//rotation returns the unit quaternion for a rotation of angle radians around
//the x (axis 0) or the z (any other value) axis.
func rotation(axis int, angle float64) quat.Number {
	s, c := math.Sincos(angle / 2)
	if axis == 0 {
		return quat.Number{Real: c, Imag: s}
	}
	return quat.Number{Real: c, Kmag: s}
}

//EulerToQuaternion returns the unit quaternion corresponding to the Bunge Euler angles e
//(in radians). The quaternion is the product of the rotations around z by phi1, around x by Phi
//and around z by phi2, in that order.
//The result is returned in the northern hemisphere (q0 >= 0). The angles are not validated, NaNs
//propagate to the result.
func EulerToQuaternion[T Float](e Euler[T]) Quaternion {
	q := quat.Mul(rotation(2, float64(e.Phi1)), rotation(0, float64(e.Phi)))
	q = quat.Mul(q, rotation(2, float64(e.Phi2)))
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}
	return q
}

//QuaternionToEuler returns the Bunge Euler angles, in radians, for the rotation q, which
//must be a unit quaternion. phi1 and phi2 are returned in [0, 2pi) and Phi in [0, pi].
//When Phi is 0 or pi only the sum (or difference) of phi1 and phi2 is defined, and all
//of it is assigned to phi1.
func QuaternionToEuler(q Quaternion) Euler[float64] {
	q0, q1, q2, q3 := q.Real, q.Imag, q.Jmag, q.Kmag
	q03 := q0*q0 + q3*q3
	q12 := q1*q1 + q2*q2
	chi := math.Sqrt(q03 * q12)
	var e Euler[float64]
	switch {
	case chi < appzero && q12 < appzero:
		e.Phi1 = math.Atan2(2*q0*q3, q0*q0-q3*q3)
	case chi < appzero:
		e.Phi = math.Pi
		e.Phi1 = math.Atan2(2*q1*q2, q1*q1-q2*q2)
	default:
		e.Phi1 = math.Atan2((q1*q3+q0*q2)/chi, (q0*q1-q2*q3)/chi)
		e.Phi = math.Atan2(2*chi, q03-q12)
		e.Phi2 = math.Atan2((q1*q3-q0*q2)/chi, (q2*q3+q0*q1)/chi)
	}
	e.Phi1 = wrap2Pi(e.Phi1)
	e.Phi2 = wrap2Pi(e.Phi2)
	return e
}

//Norm returns the norm of q. It is 1 for every quaternion returned by EulerToQuaternion, up to rounding.
func Norm(q Quaternion) float64 {
	return quat.Abs(q)
}

//Array returns the 4 components of q in (q0, q1, q2, q3) order.
func Array(q Quaternion) [4]float64 {
	return [4]float64{q.Real, q.Imag, q.Jmag, q.Kmag}
}

func wrap2Pi(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
