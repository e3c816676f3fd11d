// Copyright Cartesi and individual authors (see AUTHORS)
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errs defines the error taxonomy shared by the Merkle tree
// engines: out-of-range index/size arguments, invalid-argument wire
// conversions, and internal self-check failures. It also knows how to
// translate any of these into a gRPC status, since that is the only
// boundary this module is expected to cross.
package errs

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind identifies which branch of the taxonomy an Error belongs to.
type Kind int

const (
	// Unknown is never constructed by this package; it is the zero value
	// returned by Code for errors it did not create.
	Unknown Kind = iota
	// OutOfRange marks size or index arguments that violate a tree's
	// invariants, including appends past capacity.
	OutOfRange
	// InvalidArgument marks malformed wire-level requests, such as a
	// sibling-hash count that does not match the expected depth.
	InvalidArgument
	// Internal marks a self-check failure: a proof built by the core
	// failed its own verification. This indicates an implementation bug.
	Internal
)

func (k Kind) String() string {
	switch k {
	case OutOfRange:
		return "out of range"
	case InvalidArgument:
		return "invalid argument"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the concrete error type produced by this module. Its Kind
// dictates how a caller at a service boundary should map it to a
// transport-specific status.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// OutOfRangef builds an OutOfRange error.
func OutOfRangef(format string, args ...interface{}) error {
	return newf(OutOfRange, format, args...)
}

// InvalidArgumentf builds an InvalidArgument error.
func InvalidArgumentf(format string, args ...interface{}) error {
	return newf(InvalidArgument, format, args...)
}

// Internalf builds an Internal error.
func Internalf(format string, args ...interface{}) error {
	return newf(Internal, format, args...)
}

// Debug controls whether AssertInvariant panics. It defaults to on, the
// same way the original C++ assert()/NDEBUG discipline defaults to
// assertions being compiled in; a release build that wants to drop the
// extra panics can flip this once at startup.
var Debug = true

// AssertInvariant panics with an Internal error built from format and
// args if cond is false and Debug is enabled. It is a no-op when cond is
// true or Debug is off, leaving the caller's own error return (typically
// an Internalf built from the same message) as the only signal.
func AssertInvariant(cond bool, format string, args ...interface{}) {
	if cond || !Debug {
		return
	}
	panic(Internalf(format, args...))
}

// Code returns the Kind of err, or Unknown if err was not built by this
// package (including nil).
func Code(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// GRPCStatus maps err to a gRPC status, for callers that cross a service
// boundary (running the actual gRPC server is out of scope for this
// module; only the status mapping is provided).
func GRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	switch Code(err) {
	case OutOfRange:
		return status.New(codes.OutOfRange, err.Error())
	case InvalidArgument:
		return status.New(codes.InvalidArgument, err.Error())
	default:
		return status.New(codes.Internal, err.Error())
	}
}
