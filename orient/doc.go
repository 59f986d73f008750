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

/*Package orient implements Bunge Euler angles and unit quaternions, and the conversions
between them. Quaternions are gonum's quat.Number, with Real as the scalar part.

The conversion conventions follow Rowenhorst et al. (Modelling Simul. Mater. Sci. Eng. 23, 2015)
with P = -1, so the quaternions produced here can be compared directly with those of EMsoft
and DREAM.3D.*/
package orient
