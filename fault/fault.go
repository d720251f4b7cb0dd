// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"github.com/cockroachdb/errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type DiscriminantError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type OverrunError GenericError
type ProcessError GenericError
type TruncatedError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrCountOverflow            = LengthError("item count exceeds prefix capacity")
	ErrDatabaseIsNotSet         = ProcessError("database is not set")
	ErrInactiveNamespaceField   = InvalidError("namespace field not used by registration type")
	ErrInvalidAddressLength     = LengthError("invalid address length")
	ErrInvalidConfiguration     = InvalidError("invalid configuration")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidCursor            = InvalidError("invalid cursor")
	ErrInvalidHashLength        = LengthError("invalid hash length")
	ErrInvalidHexString         = InvalidError("invalid hex string")
	ErrInvalidLoggerChannel     = InvalidError("invalid logger channel")
	ErrInvalidNetworkName       = InvalidError("invalid network name")
	ErrInvalidPublicKeyLength   = LengthError("invalid public key length")
	ErrInvalidSignatureLength   = LengthError("invalid signature length")
	ErrInvalidSize              = LengthError("declared size is smaller than header")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrMissingConfigurationFile = NotFoundError("configuration file is required")
	ErrNotEmbeddable            = DiscriminantError("transaction type cannot be embedded")
	ErrNotInitialised           = NotFoundError("not initialised")
	ErrPayloadOverrun           = OverrunError("embedded transaction overruns aggregate payload")
	ErrSizeMismatch             = LengthError("declared size does not match decoded size")
	ErrTransactionNotFound      = NotFoundError("transaction not found")
	ErrTruncatedInput           = TruncatedError("truncated input")
	ErrUnknownAction            = DiscriminantError("unknown action")
	ErrUnknownHashAlgorithm     = DiscriminantError("unknown hash algorithm")
	ErrUnknownNetwork           = DiscriminantError("unknown network type")
	ErrUnknownRegistrationType  = DiscriminantError("unknown namespace registration type")
	ErrUnknownTransactionType   = DiscriminantError("unknown transaction type")
	ErrWrongNetwork             = InvalidError("transaction is for a different network")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e DiscriminantError) Error() string { return string(e) }
func (e ExistsError) Error() string       { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e LengthError) Error() string       { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e OverrunError) Error() string      { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e TruncatedError) Error() string    { return string(e) }

// determine the class of an error
//
// wrapped errors are unwrapped until a class matches
func IsErrDiscriminant(e error) bool { var t DiscriminantError; return errors.As(e, &t) }
func IsErrExists(e error) bool       { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool      { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool       { var t LengthError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool     { var t NotFoundError; return errors.As(e, &t) }
func IsErrOverrun(e error) bool      { var t OverrunError; return errors.As(e, &t) }
func IsErrProcess(e error) bool      { var t ProcessError; return errors.As(e, &t) }
func IsErrTruncated(e error) bool    { var t TruncatedError; return errors.As(e, &t) }
