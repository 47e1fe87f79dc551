// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"github.com/cockroachdb/errors"
)

// Errors
var (
	// ErrInvalidFileSize is returned when the file is smaller than the
	// 3600 bytes occupied by the textual and binary headers.
	ErrInvalidFileSize = errors.New("segy: file smaller than the reel header")

	// ErrOutsideBoundary is returned when a header read extends past the
	// end of the mapped data.
	ErrOutsideBoundary = errors.New("segy: read outside data boundary")

	// ErrUnderflow is returned when a value read yields fewer bytes than
	// requested and it is not a clean end of file.
	ErrUnderflow = errors.New("segy: fewer bytes available than requested")

	// ErrUnknownType is returned for an unrecognized primitive type code.
	ErrUnknownType = errors.New("segy: unknown type code")

	// ErrKeyNotFound is returned by catalog and reader lookups for keys
	// that are not present.
	ErrKeyNotFound = errors.New("segy: key not found")

	// ErrInconsistency is returned when construction arguments or file
	// contents contradict each other.
	ErrInconsistency = errors.New("segy: inconsistent input")

	// ErrEncoding is returned when a value cannot be represented in the
	// target encoding.
	ErrEncoding = errors.New("segy: value not representable")

	// ErrOperationNotSupported is returned when an operation requires a
	// catalog or capability that is not available.
	ErrOperationNotSupported = errors.New("segy: operation not supported")
)

// keyError reports a lookup miss, naming the receiver type and the key.
func keyError(receiver string, key interface{}) error {
	return errors.Wrapf(ErrKeyNotFound, "%s does not contain key %v", receiver, key)
}

// inconsistency reports contradictory construction input.
func inconsistency(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInconsistency, format, args...)
}

// underflow reports a short read at offset.
func underflow(what string, requested, available int) error {
	return errors.Wrapf(ErrUnderflow, "%s: %d bytes requested, %d available", what, requested, available)
}

// unknownType reports an unrecognized type code.
func unknownType(code CType) error {
	return errors.Wrapf(ErrUnknownType, "type code %q", byte(code))
}

// opNotSupported reports a missing capability on a receiver.
func opNotSupported(receiver, what string) error {
	return errors.Wrapf(ErrOperationNotSupported, "%s: %s", receiver, what)
}
