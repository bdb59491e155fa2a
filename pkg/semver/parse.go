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
	"fmt"
	"math/big"
	"strings"
)

// Parse parses a semantic version string per SemVer 2.0.0. It is strict: no
// "v" prefix, no missing components, no shortcuts. Surrounding whitespace is
// trimmed; everything else must match the grammar exactly.
//
// Numeric components are carried as arbitrary-precision integers, so inputs
// like "99999999999999999999.0.0" parse without overflow.
//
// On failure the returned error is a *ParseError wrapping one of the
// package's sentinel errors.
func Parse(s string) (Version, error) {
	v, err := parse(s)
	if err != nil {
		return Version{}, &ParseError{Input: s, Err: err}
	}
	return v, nil
}

// TryParse parses s and reports whether it succeeded, discarding the error
// detail. Useful in filters and validators where only the outcome matters:
//
//	if v, ok := semver.TryParse(tag); ok {
//	    latest = append(latest, v)
//	}
func TryParse(s string) (Version, bool) {
	v, err := parse(s)
	if err != nil {
		return Version{}, false
	}
	return v, true
}

// MustParse parses a version string and panics if it is invalid.
//
// Only use this for hardcoded strings or in tests where a parse failure is
// a programming error. For anything user-supplied, use Parse.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("semver: MustParse: %v", err))
	}
	return v
}

// IsValid reports whether s is a valid SemVer 2.0.0 version string under the
// same rules as Parse.
func IsValid(s string) bool {
	_, err := parse(s)
	return err == nil
}

// parse performs a single left-to-right scan. Delimiters are unambiguous:
// the first '+' starts the build section ('+' cannot occur in identifiers),
// and the first '-' before it starts the prerelease section ('-' after the
// '+' belongs to a build identifier).
func parse(input string) (Version, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	var prePart, buildPart string
	if i := strings.IndexByte(s, '+'); i >= 0 {
		buildPart = s[i+1:]
		s = s[:i]
		if buildPart == "" {
			return Version{}, ErrEmptyBuild
		}
	}
	if i := strings.IndexByte(s, '-'); i >= 0 {
		prePart = s[i+1:]
		s = s[:i]
		if prePart == "" {
			return Version{}, ErrEmptyPrerelease
		}
	}

	pieces := strings.Split(s, ".")
	if len(pieces) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrCoreComponents, s)
	}

	var major, minor, patch big.Int
	if err := parseCoreComponent(&major, pieces[0]); err != nil {
		return Version{}, err
	}
	if err := parseCoreComponent(&minor, pieces[1]); err != nil {
		return Version{}, err
	}
	if err := parseCoreComponent(&patch, pieces[2]); err != nil {
		return Version{}, err
	}

	var prerelease, build []string
	if prePart != "" {
		ids, err := splitIdentifiers(prePart, validatePrereleaseIdentifier)
		if err != nil {
			return Version{}, err
		}
		prerelease = ids
	}
	if buildPart != "" {
		ids, err := splitIdentifiers(buildPart, validateBuildIdentifier)
		if err != nil {
			return Version{}, err
		}
		build = ids
	}

	return newVersion(&major, &minor, &patch, prerelease, build), nil
}

// parseCoreComponent validates and stores one major/minor/patch piece: all
// ASCII digits, no leading zero unless the value is exactly "0".
func parseCoreComponent(dst *big.Int, piece string) error {
	if !isNumeric(piece) {
		return fmt.Errorf("%w: %q", ErrNonNumeric, piece)
	}
	if len(piece) > 1 && piece[0] == '0' {
		return fmt.Errorf("%w: %q", ErrLeadingZero, piece)
	}
	dst.SetString(piece, 10)
	return nil
}

// splitIdentifiers splits a prerelease or build section on dots and runs the
// section's validator over every identifier, returning them in order.
func splitIdentifiers(part string, validate func(string) error) ([]string, error) {
	ids := strings.Split(part, ".")
	for _, id := range ids {
		if err := validate(id); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

// validatePrereleaseIdentifier checks one dot-separated prerelease piece:
// non-empty, ASCII alphanumerics and hyphen only, and if all digits, no
// leading zero.
func validatePrereleaseIdentifier(id string) error {
	if id == "" {
		return fmt.Errorf("%w in prerelease part", ErrEmptyIdentifier)
	}
	if !isIdentifier(id) {
		return fmt.Errorf("prerelease %w: %q", ErrInvalidCharacter, id)
	}
	if len(id) > 1 && id[0] == '0' && isNumeric(id) {
		return fmt.Errorf("%w: %q", ErrPrereleaseLeadingZero, id)
	}
	return nil
}

// validateBuildIdentifier checks one dot-separated build piece: non-empty,
// ASCII alphanumerics and hyphen only. Unlike prerelease identifiers,
// all-digit build identifiers may carry leading zeros ("001" is valid).
func validateBuildIdentifier(id string) error {
	if id == "" {
		return fmt.Errorf("%w in build part", ErrEmptyIdentifier)
	}
	if !isIdentifier(id) {
		return fmt.Errorf("build %w: %q", ErrInvalidCharacter, id)
	}
	return nil
}

// isIdentifier reports whether id consists solely of ASCII letters, digits,
// and hyphens. Identifiers are byte-oriented; multi-byte runes are rejected
// wholesale because every UTF-8 continuation byte falls outside the set.
func isIdentifier(id string) bool {
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && c != '-' {
			return false
		}
	}
	return true
}

// isNumeric reports whether s is non-empty and all ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
