/*
 * table.go, part of goEBSD.
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

package ctf

import (
	ebsd "github.com/rmera/goebsd"
)

//Table maps phase counts, from ebsd.MinPhases to ebsd.MaxPhases, to the parser for files
//with that many phases. A Table is never modified after BuildTable returns, so it can be
//used from several goroutines.
type Table struct {
	parsers [ebsd.MaxPhases - ebsd.MinPhases + 1]Parser
}

//BuildTable returns a table with a parser for each supported phase count.
func BuildTable() *Table {
	T := new(Table)
	for i := range T.parsers {
		T.parsers[i] = ForPhases(i + ebsd.MinPhases)
	}
	return T
}

//Lookup returns the parser for files with the given number of phases, or an error
//matching ebsd.ErrRange if the number is not supported.
func (T *Table) Lookup(phases int) (Parser, error) {
	if err := ebsd.CheckPhases(phases); err != nil {
		return nil, ebsd.ErrDecorate(err, "Lookup")
	}
	return T.parsers[phases-ebsd.MinPhases], nil
}

//Len returns the number of entries in the table.
func (T *Table) Len() int {
	return len(T.parsers)
}

var variants = BuildTable()

//Lookup returns the parser for files with the given number of phases from a table
//built when the package is initialized.
func Lookup(phases int) (Parser, error) {
	return variants.Lookup(phases)
}
