package semver

import (
	"testing"

	masterminds "github.com/Masterminds/semver/v3"
	xsemver "golang.org/x/mod/semver"
)

// conformanceCorpus holds strict SemVer 2.0.0 strings drawn from the
// semver.org reference test suite. Every entry must parse here, in
// golang.org/x/mod/semver, and in Masterminds StrictNewVersion, and all
// three must agree on precedence.
var conformanceCorpus = []string{
	"0.0.0",
	"0.0.1",
	"0.1.0",
	"1.0.0",
	"1.2.3",
	"2.0.0",
	"10.20.30",
	"1.1.2-prerelease+meta",
	"1.1.2+meta",
	"1.1.2+meta-valid",
	"1.0.0-alpha",
	"1.0.0-beta",
	"1.0.0-alpha.beta",
	"1.0.0-alpha.beta.1",
	"1.0.0-alpha.1",
	"1.0.0-alpha0.valid",
	"1.0.0-alpha.0valid",
	"1.0.0-rc.1+build.1",
	"2.0.0-rc.1+build.123",
	"10.2.3-DEV-SNAPSHOT",
	"1.2.3-SNAPSHOT-123",
	"1.0.0+build.1848",
	"2.0.1-alpha.1227",
	"1.0.0-alpha+beta",
	"1.2.3----RC-SNAPSHOT.12.9.1--.12+788",
	"1.0.0-0A.is.legal",
}

// bigConformanceCorpus exceeds uint64, so it is only cross-checked against
// x/mod/semver, which compares digit strings without converting them.
var bigConformanceCorpus = []string{
	"99999999999999999999.0.0",
	"100000000000000000000.0.0",
	"1.0.0-99999999999999999999",
	"1.0.0-100000000000000000000",
}

// invalidCorpus holds strings every strict parser must reject.
var invalidCorpus = []string{
	"",
	" ",
	"1",
	"1.2",
	"1.2.3-0123",
	"1.2.3-0123.0123",
	"1.1.2+.123",
	"+invalid",
	"-invalid",
	"alpha",
	"alpha.beta",
	"1.0.0-alpha_beta",
	"1.0.0-alpha..",
	"1.0.0-alpha..1",
	"01.1.1",
	"1.01.1",
	"1.1.01",
	"1.2.3.DEV",
	"1.2-SNAPSHOT",
	"1.2.3-",
	"1.0.0+",
	"1.0.0-+",
	"v1.2.3",
	"1 .2.3",
}

func TestConformanceXModSemver(t *testing.T) {
	corpus := make([]string, 0, len(conformanceCorpus)+len(bigConformanceCorpus))
	corpus = append(corpus, conformanceCorpus...)
	corpus = append(corpus, bigConformanceCorpus...)

	versions := make([]Version, len(corpus))
	for i, s := range corpus {
		if !xsemver.IsValid("v" + s) {
			t.Fatalf("golang.org/x/mod/semver rejects corpus entry %q", s)
		}
		v, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		versions[i] = v
	}

	for i, a := range corpus {
		for j, b := range corpus {
			want := xsemver.Compare("v"+a, "v"+b)
			if got := Compare(versions[i], versions[j]); got != want {
				t.Errorf("Compare(%s, %s) = %d, x/mod/semver says %d", a, b, got, want)
			}
		}
	}
}

func TestConformanceMasterminds(t *testing.T) {
	ours := make([]Version, len(conformanceCorpus))
	theirs := make([]*masterminds.Version, len(conformanceCorpus))
	for i, s := range conformanceCorpus {
		mv, err := masterminds.StrictNewVersion(s)
		if err != nil {
			t.Fatalf("Masterminds rejects corpus entry %q: %v", s, err)
		}
		v, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		ours[i], theirs[i] = v, mv
	}

	for i, a := range conformanceCorpus {
		for j, b := range conformanceCorpus {
			want := theirs[i].Compare(theirs[j])
			if got := Compare(ours[i], ours[j]); got != want {
				t.Errorf("Compare(%s, %s) = %d, Masterminds says %d", a, b, got, want)
			}
		}
	}
}

func TestConformanceRejections(t *testing.T) {
	for _, s := range invalidCorpus {
		t.Run(s, func(t *testing.T) {
			if IsValid(s) {
				t.Errorf("IsValid(%q) = true, want rejection", s)
			}
			if _, err := masterminds.StrictNewVersion(s); err == nil {
				t.Errorf("Masterminds accepts %q, expected both parsers to reject", s)
			}
		})
	}
}
