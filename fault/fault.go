// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrConfigurationTable   = ProcessError("configuration did not return a table")
	ErrHeightMismatch       = InvalidError("cached height is incorrect")
	ErrInvalidCount         = InvalidError("count is invalid")
	ErrInvalidKey           = InvalidError("key is invalid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyOrder             = InvalidError("keys are out of order")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrSizeMismatch         = InvalidError("cached size is incorrect")
	ErrUnbalanced           = InvalidError("sub-tree heights differ by more than one")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool {
	var x ExistsError
	return errors.As(e, &x)
}

func IsErrInvalid(e error) bool {
	var x InvalidError
	return errors.As(e, &x)
}

func IsErrNotFound(e error) bool {
	var x NotFoundError
	return errors.As(e, &x)
}

func IsErrProcess(e error) bool {
	var x ProcessError
	return errors.As(e, &x)
}
