/*
 * errors.go, part of goEBSD.
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
	"errors"
	"fmt"
	"strings"
)

//Error kinds. Every error returned by goEBSD packages matches exactly one of these
//with errors.Is.
var (
	ErrFileOpen  = errors.New("can't open file")
	ErrSizeQuery = errors.New("can't determine file size")
	ErrMapping   = errors.New("can't map file")
	ErrParse     = errors.New("malformed record")
	ErrRange     = errors.New("phase count out of range")
	ErrWrite     = errors.New("can't write records")
)

//Decorator is implemented by errors that collect the chain of callers they went through.
//Decorate adds caller to the chain, unless it is empty, and returns the chain.
type Decorator interface {
	error
	Decorate(caller string) []string
}

//Error is the error type used by all goEBSD packages. It carries its kind (one of the
//Err* values), the file involved, if any, the underlying cause and the list of
//functions it was passed through.
type Error struct {
	kind     error
	cause    error
	message  string
	filename string
	deco     []string
	critical bool
}

//NewError returns a critical error of the given kind. cause can be nil.
func NewError(kind error, filename, message string, cause error, caller ...string) *Error {
	return &Error{
		kind:     kind,
		cause:    cause,
		message:  message,
		filename: filename,
		deco:     append([]string(nil), caller...),
		critical: true,
	}
}

func (E *Error) Error() string {
	msg := E.message
	if msg == "" {
		msg = E.kind.Error()
	}
	if E.cause != nil {
		msg = msg + ": " + E.cause.Error()
	}
	if len(E.deco) > 0 {
		msg = msg + " (" + strings.Join(E.deco, " <- ") + ")"
	}
	if E.filename == "" {
		return "goEBSD error: " + msg
	}
	return fmt.Sprintf("goEBSD file %s error: %s", E.filename, msg)
}

//Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (E *Error) Unwrap() []error {
	if E.cause == nil {
		return []error{E.kind}
	}
	return []error{E.kind, E.cause}
}

//Decorate adds deco to the list of callers the error went through.
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Kind returns the Err* value the error belongs to.
func (E *Error) Kind() error { return E.kind }

//FileName returns the file associated to the error, or an empty string.
func (E *Error) FileName() string { return E.filename }

//Critical returns true if the error should stop the current conversion.
func (E *Error) Critical() bool { return E.critical }

//ErrDecorate decorates err with caller if err implements Decorator, and returns it.
//Other errors are returned unchanged.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var d Decorator
	if errors.As(err, &d) {
		d.Decorate(caller)
	}
	return err
}
