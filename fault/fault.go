// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
//
// ValidationError - a structural invariant was violated by caller
//                   supplied data (bit/ref/depth bounds)
// FormatError     - wire bytes are not a well formed bag of cells
// IntegrityError  - checksum or offset cross-check failed
// UsageError      - a cursor was read past its available bits or refs
type ValidationError GenericError
type FormatError GenericError
type IntegrityError GenericError
type UsageError GenericError

// common errors - keep in alphabetic order per class
var (
	ErrBitOutOfRange       = ValidationError("bit index is out of range")
	ErrBitsTooLong         = ValidationError("cell payload exceeds 1023 bits")
	ErrDepthExceeded       = ValidationError("cell depth exceeds 1024")
	ErrExoticTagMismatch   = ValidationError("exotic cell tag does not match cell type")
	ErrExoticTooShort      = ValidationError("exotic cell payload is shorter than its tag")
	ErrInvalidDigestLength = ValidationError("digest length is invalid")
	ErrKeyLength           = ValidationError("key length is invalid")
	ErrNilReference        = ValidationError("cell reference is nil")
	ErrNoRoots             = ValidationError("bag of cells needs at least one root")
	ErrTooManyRefs         = ValidationError("cell references exceed 4")
	ErrValueTooLarge       = ValidationError("value does not fit bit width")
	ErrWidthOutOfRange     = ValidationError("bit width is out of range")

	ErrAbsentCellsUnsupported = FormatError("absent cells are not supported")
	ErrBagTooShort            = FormatError("bag of cells is truncated")
	ErrCacheBitsUnsupported   = FormatError("cache bits are not supported")
	ErrCellSizeMismatch       = FormatError("cell records do not match declared size")
	ErrInvalidDescriptor      = FormatError("cell descriptor is invalid")
	ErrInvalidFlags           = FormatError("invalid flags byte")
	ErrInvalidMagic           = FormatError("invalid bag of cells magic")
	ErrInvalidPadding         = FormatError("augmented payload has no set bit")
	ErrInvalidRefIndex        = FormatError("reference index is out of order")
	ErrInvalidRootIndex       = FormatError("root index is out of range")
	ErrInvalidWidth           = FormatError("index or offset width is invalid")
	ErrTrailingData           = FormatError("extra bytes after bag of cells")
	ErrUnknownExoticTag       = FormatError("unknown exotic cell tag")

	ErrChecksumMismatch = IntegrityError("checksum does not match")
	ErrOffsetMismatch   = IntegrityError("offset table does not match")

	ErrBuilderFinalised = UsageError("builder is already finalised")
	ErrInvalidSignature = UsageError("invalid signature")
	ErrNotEnoughBits    = UsageError("not enough bits in slice")
	ErrNotEnoughRefs    = UsageError("not enough references in slice")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e ValidationError) Error() string { return string(e) }
func (e FormatError) Error() string     { return string(e) }
func (e IntegrityError) Error() string  { return string(e) }
func (e UsageError) Error() string      { return string(e) }

// IsErrValidation - determine the class of an error
func IsErrValidation(e error) bool { _, ok := e.(ValidationError); return ok }
func IsErrFormat(e error) bool     { _, ok := e.(FormatError); return ok }
func IsErrIntegrity(e error) bool  { _, ok := e.(IntegrityError); return ok }
func IsErrUsage(e error) bool      { _, ok := e.(UsageError); return ok }
