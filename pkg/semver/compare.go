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
	"math/big"
	"strings"
)

// Compare orders two versions by SemVer 2.0.0 precedence, returning
//
//	-1 if a has lower precedence than b
//	 0 if a and b have equal precedence
//	 1 if a has higher precedence than b
//
// Build metadata never participates: "1.0.0+linux" and "1.0.0+darwin" are
// equal here. The signature matches what slices.SortFunc expects:
//
//	slices.SortFunc(versions, semver.Compare)
func Compare(a, b Version) int {
	return a.Compare(b)
}

// CompareWithBuild orders two versions by precedence, breaking precedence
// ties with build metadata. The result is a deterministic total order suited
// to stable display and storage ordering; it is not part of SemVer
// precedence. Like Compare it is directly usable with slices.SortFunc.
func CompareWithBuild(a, b Version) int {
	return a.CompareWithBuild(b)
}

// Compare orders v against other by SemVer precedence. See the package-level
// Compare for the returned values.
func (v Version) Compare(other Version) int {
	if c := v.major.Cmp(&other.major); c != 0 {
		return c
	}
	if c := v.minor.Cmp(&other.minor); c != 0 {
		return c
	}
	if c := v.patch.Cmp(&other.patch); c != 0 {
		return c
	}

	// Same core: a stable release outranks any prerelease of it.
	switch {
	case len(v.prerelease) == 0 && len(other.prerelease) == 0:
		return 0
	case len(v.prerelease) == 0:
		return 1
	case len(other.prerelease) == 0:
		return -1
	}
	return comparePrerelease(v.prerelease, other.prerelease)
}

// CompareWithBuild orders v against other by precedence, then by build
// metadata. See the package-level CompareWithBuild.
func (v Version) CompareWithBuild(other Version) int {
	if c := v.Compare(other); c != 0 {
		return c
	}
	return compareBuild(v.build, other.build)
}

// comparePrerelease walks two non-empty identifier sequences: numeric
// identifiers compare as integers and always sort below alphanumeric ones,
// alphanumerics compare by ordinal byte value, and once the shared positions
// tie, the shorter sequence is lesser.
func comparePrerelease(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		an, bn := isNumeric(a[i]), isNumeric(b[i])
		switch {
		case an && bn:
			if c := compareNumeric(a[i], b[i]); c != 0 {
				return c
			}
		case an:
			return -1
		case bn:
			return 1
		default:
			if c := strings.Compare(a[i], b[i]); c != 0 {
				return c
			}
		}
	}
	return compareLengths(a, b)
}

// compareBuild breaks precedence ties over build identifiers. Two numeric
// identifiers compare as integers, so "2" sorts below "10" and "001" ties
// with "1"; every other pairing, including numeric against alphanumeric,
// compares by ordinal byte value. A tie here therefore does not imply
// identity equality.
func compareBuild(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if isNumeric(a[i]) && isNumeric(b[i]) {
			if c := compareNumeric(a[i], b[i]); c != 0 {
				return c
			}
		} else if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return compareLengths(a, b)
}

// compareNumeric compares two all-digit identifiers as arbitrary-precision
// integers, so digit runs longer than an int64 still order correctly.
func compareNumeric(a, b string) int {
	x, _ := new(big.Int).SetString(a, 10)
	y, _ := new(big.Int).SetString(b, 10)
	return x.Cmp(y)
}

func compareLengths(a, b []string) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
