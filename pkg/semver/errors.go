// Copyright (c) 2026, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package semver

import (
	"errors"
	"fmt"
)

// Error types for version parsing and construction failures. Parse wraps
// these in a *ParseError together with the original input; use errors.Is to
// classify a failure regardless of wrapping.
var (
	// ErrEmptyVersion indicates the input was empty (or whitespace only).
	ErrEmptyVersion = errors.New("version string is empty")

	// ErrCoreComponents indicates the core was not exactly three
	// dot-separated pieces (e.g. "1.0" or "1.0.0.0").
	ErrCoreComponents = errors.New("core version must be three dot-separated numeric components")

	// ErrNonNumeric indicates a core component contains a non-digit
	// character or is missing entirely.
	ErrNonNumeric = errors.New("core component is not numeric")

	// ErrLeadingZero indicates a core component other than "0" starts
	// with a zero.
	ErrLeadingZero = errors.New("core component has a leading zero")

	// ErrEmptyPrerelease indicates a '-' with nothing after it.
	ErrEmptyPrerelease = errors.New("prerelease part after '-' is empty")

	// ErrEmptyBuild indicates a '+' with nothing after it.
	ErrEmptyBuild = errors.New("build metadata after '+' is empty")

	// ErrEmptyIdentifier indicates an empty piece between dots in the
	// prerelease or build section (e.g. "1.0.0-alpha..1").
	ErrEmptyIdentifier = errors.New("empty identifier between dots")

	// ErrInvalidCharacter indicates an identifier containing characters
	// outside ASCII letters, digits, and hyphen.
	ErrInvalidCharacter = errors.New("identifier contains invalid characters")

	// ErrPrereleaseLeadingZero indicates an all-digit prerelease
	// identifier other than "0" starting with a zero.
	ErrPrereleaseLeadingZero = errors.New("numeric prerelease identifier has a leading zero")

	// ErrNegativeComponent indicates a negative major, minor, or patch
	// passed to Of.
	ErrNegativeComponent = errors.New("version component cannot be negative")
)

// ParseError reports why a version string failed to parse. It records the
// full input alongside the specific violation so callers surfacing the error
// (config loaders, manifest validators) can point at the bad value. Callers
// can use errors.As to extract it:
//
//	var perr *semver.ParseError
//	if errors.As(err, &perr) {
//	    fmt.Printf("bad version %q\n", perr.Input)
//	}
//
// The wrapped violation is always one of the Err* sentinels above, so
// errors.Is(err, semver.ErrLeadingZero) and friends work through it.
type ParseError struct {
	// Input is the original string handed to Parse, before trimming.
	Input string

	// Err is the first violation found during the left-to-right scan,
	// wrapping one of the package sentinels and, where applicable, the
	// offending piece.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid semantic version %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying violation for errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
