// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package errors defines the error kinds shared by every codec and
// transform in this module, along with the panic/recover idiom used to
// keep the hot compression and decompression loops free of explicit
// error checks.
package errors

import "fmt"

// Kind identifies the category of a failure so that callers can
// distinguish them without string matching.
type Kind uint8

const (
	_ Kind = iota

	// Truncated reports that the input ended before a field could be
	// fully read.
	Truncated

	// Corrupted reports that a structural invariant of an on-disk format
	// was violated.
	Corrupted

	// OutOfMemory reports that a size-limited structure (the LZW
	// dictionary) could not grow to accommodate new entries under the
	// configured overflow policy.
	OutOfMemory

	// Invalid reports that a caller-supplied option was out of range.
	Invalid
)

func (k Kind) String() string {
	switch k {
	case Truncated:
		return "truncated"
	case Corrupted:
		return "corrupted"
	case OutOfMemory:
		return "out of memory"
	case Invalid:
		return "invalid argument"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type returned by every package in this
// module. Kind lets a caller switch on the failure category; Msg carries
// a human-readable detail.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "fcodec: " + e.Kind.String()
	}
	return "fcodec: " + e.Kind.String() + ": " + e.Msg
}

// E constructs an *Error of the given kind.
func E(k Kind, msg string) error { return &Error{Kind: k, Msg: msg} }

// Ef is like E but accepts a format string.
func Ef(k Kind, format string, args ...interface{}) error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == k
}

// Panic panics with err so that it can be intercepted by Recover. This
// lets decode loops bail out from arbitrary call depth without manually
// threading an error return through every helper.
func Panic(err error) { panic(err) }

// Recover must be deferred at the top of any exported Encode or Decode
// method that uses Panic internally. It converts a panic carrying an
// *Error (or any error) into a normal return value; any other panic
// (a runtime error such as an out-of-bounds index) propagates unchanged
// since it indicates a bug rather than malformed input.
func Recover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtimeError:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

// runtimeError is satisfied by the runtime package's internal error type
// (out-of-bounds index, nil dereference, etc). Matching the interface
// rather than importing "runtime" keeps this package dependency-free.
type runtimeError interface {
	error
	RuntimeError()
}
