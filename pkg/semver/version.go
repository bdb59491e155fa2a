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
	"slices"
	"strings"
)

// Version is an immutable SemVer 2.0.0 version value. Construct one with
// Parse, New, or Of; the zero value is usable and renders as "0.0.0".
//
// All fields are private and every accessor returns a copy, so a Version can
// be shared across goroutines without synchronization. Versions are
// comparable with Compare (precedence) and Equals (identity); because the
// struct holds slices it is not a valid map key, use String() to key maps.
type Version struct {
	major big.Int
	minor big.Int
	patch big.Int

	prerelease []string
	build      []string

	// canonical is rendered once at construction. It stays empty only on
	// the zero value, which String renders on the fly so that a shared
	// Version is never written after construction.
	canonical string
}

var bigOne = big.NewInt(1)

// New creates a stable release version (no prerelease, no build metadata)
// from numeric components.
func New(major, minor, patch uint64) Version {
	var v Version
	v.major.SetUint64(major)
	v.minor.SetUint64(minor)
	v.patch.SetUint64(patch)
	v.canonical = v.render()
	return v
}

// Of builds a Version from explicit components, validating prerelease and
// build identifiers under the same rules as Parse. The numeric components
// and identifier slices are copied, so later mutation by the caller does not
// affect the returned Version. A nil prerelease or build slice means the
// section is absent.
//
// Of panics if major, minor, or patch is nil; it returns
// ErrNegativeComponent if any of them is negative.
func Of(major, minor, patch *big.Int, prerelease, build []string) (Version, error) {
	for _, c := range []*big.Int{major, minor, patch} {
		if c.Sign() < 0 {
			return Version{}, fmt.Errorf("%w: %s", ErrNegativeComponent, c)
		}
	}
	for _, id := range prerelease {
		if err := validatePrereleaseIdentifier(id); err != nil {
			return Version{}, err
		}
	}
	for _, id := range build {
		if err := validateBuildIdentifier(id); err != nil {
			return Version{}, err
		}
	}
	return newVersion(major, minor, patch, slices.Clone(prerelease), slices.Clone(build)), nil
}

// newVersion copies the numeric components and takes ownership of the
// identifier slices, which callers must not retain.
func newVersion(major, minor, patch *big.Int, prerelease, build []string) Version {
	v := Version{prerelease: prerelease, build: build}
	v.major.Set(major)
	v.minor.Set(minor)
	v.patch.Set(patch)
	v.canonical = v.render()
	return v
}

// Major returns the major component as a new big.Int. Mutating the result
// does not affect the Version.
func (v Version) Major() *big.Int {
	return new(big.Int).Set(&v.major)
}

// Minor returns the minor component as a new big.Int.
func (v Version) Minor() *big.Int {
	return new(big.Int).Set(&v.minor)
}

// Patch returns the patch component as a new big.Int.
func (v Version) Patch() *big.Int {
	return new(big.Int).Set(&v.patch)
}

// Prerelease returns a copy of the prerelease identifiers in order, or nil
// for a stable release.
func (v Version) Prerelease() []string {
	return slices.Clone(v.prerelease)
}

// Build returns a copy of the build metadata identifiers in order, or nil
// when no build metadata is present.
func (v Version) Build() []string {
	return slices.Clone(v.build)
}

// IsPrerelease reports whether the version carries prerelease identifiers.
func (v Version) IsPrerelease() bool {
	return len(v.prerelease) > 0
}

// HasBuild reports whether the version carries build metadata.
func (v Version) HasBuild() bool {
	return len(v.build) > 0
}

// Core returns the bare "major.minor.patch" triple without prerelease or
// build sections.
func (v Version) Core() string {
	return v.major.String() + "." + v.minor.String() + "." + v.patch.String()
}

// BumpMajor returns a new stable version with the major component
// incremented and minor and patch reset to zero. Prerelease identifiers and
// build metadata are always discarded.
func (v Version) BumpMajor() Version {
	var next Version
	next.major.Add(&v.major, bigOne)
	next.canonical = next.render()
	return next
}

// BumpMinor returns a new stable version with the minor component
// incremented and patch reset to zero. Prerelease identifiers and build
// metadata are always discarded.
func (v Version) BumpMinor() Version {
	var next Version
	next.major.Set(&v.major)
	next.minor.Add(&v.minor, bigOne)
	next.canonical = next.render()
	return next
}

// BumpPatch returns a new stable version with the patch component
// incremented. Prerelease identifiers and build metadata are always
// discarded.
func (v Version) BumpPatch() Version {
	var next Version
	next.major.Set(&v.major)
	next.minor.Set(&v.minor)
	next.patch.Add(&v.patch, bigOne)
	next.canonical = next.render()
	return next
}

// Equals reports identity equality: core components, prerelease identifiers,
// and build metadata must all match. This is stricter than precedence
// equality; "1.0.0+linux" and "1.0.0+darwin" compare equal under Compare but
// are not Equals.
func (v Version) Equals(other Version) bool {
	return v.major.Cmp(&other.major) == 0 &&
		v.minor.Cmp(&other.minor) == 0 &&
		v.patch.Cmp(&other.patch) == 0 &&
		slices.Equal(v.prerelease, other.prerelease) &&
		slices.Equal(v.build, other.build)
}

// IsNewer reports whether v has strictly higher precedence than other.
// Build metadata is ignored, as in Compare.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// EqualsOrNewer reports whether v has at least the precedence of other.
func (v Version) EqualsOrNewer(other Version) bool {
	return v.Compare(other) >= 0
}

// String returns the canonical form: "major.minor.patch", then
// "-" and the dot-joined prerelease identifiers if present, then "+" and the
// dot-joined build identifiers if present. Parsing the result yields an
// identical Version.
func (v Version) String() string {
	if v.canonical != "" {
		return v.canonical
	}
	return v.render()
}

func (v Version) render() string {
	var b strings.Builder
	b.WriteString(v.major.String())
	b.WriteByte('.')
	b.WriteString(v.minor.String())
	b.WriteByte('.')
	b.WriteString(v.patch.String())
	if len(v.prerelease) > 0 {
		b.WriteByte('-')
		b.WriteString(strings.Join(v.prerelease, "."))
	}
	if len(v.build) > 0 {
		b.WriteByte('+')
		b.WriteString(strings.Join(v.build, "."))
	}
	return b.String()
}
