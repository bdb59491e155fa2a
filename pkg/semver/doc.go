// Package semver provides strict parsing, validation, and total-order
// comparison for Semantic Versioning 2.0.0 version strings.
//
// # Overview
//
// This package implements the full semver.org grammar with no extensions and
// no leniency: a "v" prefix, a missing component ("1.0"), a leading zero
// ("01.0.0"), or a stray character anywhere all fail to parse. Numeric
// components are arbitrary-precision integers, so versions produced from
// timestamps or monotonic counters (e.g. "20260825123045.0.0" or a 30-digit
// major) parse and compare exactly, with no overflow.
//
// Supported:
//   - Major.Minor.Patch core with arbitrary-precision components
//   - Prerelease identifiers (e.g. "1.2.3-alpha.1")
//   - Build metadata (e.g. "1.2.3+build.123")
//   - SemVer precedence comparison and a build-aware total order
//
// Not supported:
//   - Version ranges or constraints (use a constraint library on top)
//   - Loose or partial forms ("v1.2", "1.2"); parse those upstream if needed
//
// # Usage
//
// Parse a version string:
//
//	v, err := semver.Parse("1.2.3-rc.1+build.45")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.2.3-rc.1+build.45
//
// Sort versions by precedence:
//
//	slices.SortFunc(versions, semver.Compare)
//
// Compare two versions:
//
//	current := semver.MustParse("1.2.3")
//	required := semver.MustParse("1.2.0")
//	if current.EqualsOrNewer(required) {
//	    fmt.Println("Version requirement met")
//	}
//
// # Precedence and Identity
//
// Compare implements SemVer precedence: major, minor, patch numerically,
// then prerelease identifiers per the semver.org rules; build metadata is
// ignored, so "1.0.0+linux" and "1.0.0+darwin" have equal precedence.
// CompareWithBuild additionally breaks such ties over the build identifiers,
// giving a deterministic order for display and storage.
//
// Equals is identity: it also requires build metadata to match. Version
// holds slices and is not a valid map key; key maps by the canonical string
// instead:
//
//	seen := map[string]semver.Version{}
//	seen[v.String()] = v
//
// # Error Handling
//
// Parse returns a *ParseError that records the input and wraps a sentinel
// error naming the first violated rule in scan order, such as:
//
//   - ErrEmptyVersion: input is empty or whitespace
//   - ErrCoreComponents: core is not exactly three components
//   - ErrLeadingZero: core component has a leading zero
//   - ErrPrereleaseLeadingZero: numeric prerelease identifier has a leading zero
//   - ErrInvalidCharacter: identifier with characters outside [0-9A-Za-z-]
//
// Classify failures with errors.Is, or errors.As for the full *ParseError.
// For constant initialization, use MustParse which panics on error:
//
//	var MinVersion = semver.MustParse("1.0.0")
//
// # Concurrency
//
// Version values are immutable after construction and safe for concurrent
// use without synchronization. Parsing cost is bounded by input length plus
// big-integer conversion of the numeric components.
package semver
