/*
 * interfaces.go, part of ljscan.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 * ljscan is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package lj

import "fmt"

//Errors

// Error is the interface for errors that all packages in this module implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the "decoration" slice resulting from the current call. An empty string only returns the current value.
}

//Messages for the errors in this package
const (
	InvalidArgument = "Invalid argument"
	EmptyInput      = "Empty input"
	WrongFormat     = "Wrong format"
	UnableToOpen    = "Unable to open file"
)

//CError is the concrete error type of the lj package. It implements Error.
type CError struct {
	msg      string
	deco     []string
	critical bool
}

//NewError returns a CError with the given message, decorated with the
//caller's name.
func NewError(msg, caller string, critical bool) *CError {
	return &CError{msg: msg, deco: []string{caller}, critical: critical}
}

func (err *CError) Error() string { return err.msg }

//Decorate Adds new information to the error
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise
func (err *CError) Critical() bool { return err.critical }

//errDecorate decorates err with the caller's name if it implements Error,
//otherwise it wraps it in a CError.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
		return e
	}
	return &CError{msg: err.Error(), deco: []string{caller}, critical: true}
}

//invalidf is a shortcut for a critical InvalidArgument error with details.
func invalidf(caller, format string, a ...interface{}) *CError {
	return NewError(fmt.Sprintf("%s: %s", InvalidArgument, fmt.Sprintf(format, a...)), caller, true)
}
