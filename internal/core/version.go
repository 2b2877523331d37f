package core

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"pspec/internal/types"
)

// ParseVersionScheme maps a configured scheme name to a VersionScheme.
// An empty name selects the Debian scheme.
func ParseVersionScheme(value string) (types.VersionScheme, error) {
	switch types.VersionScheme(value) {
	case "", types.VersionSchemeDeb:
		return types.VersionSchemeDeb, nil
	case types.VersionSchemePep440:
		return types.VersionSchemePep440, nil
	case types.VersionSchemeSemver:
		return types.VersionSchemeSemver, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported version scheme %q", value))
	}
}

// compareVersions returns -1, 0, or 1 comparing two version strings
// using the given scheme.
func compareVersions(scheme types.VersionScheme, a string, b string) (int, error) {
	if a == b {
		return 0, nil
	}
	switch scheme {
	case types.VersionSchemeDeb, "":
		v1, err := debversion.NewVersion(a)
		if err != nil {
			return 0, err
		}
		v2, err := debversion.NewVersion(b)
		if err != nil {
			return 0, err
		}
		return cmp.Compare(v1.Compare(v2), 0), nil
	case types.VersionSchemePep440:
		v1, err := pep440.Parse(a)
		if err != nil {
			return 0, err
		}
		v2, err := pep440.Parse(b)
		if err != nil {
			return 0, err
		}
		return cmp.Compare(v1.Compare(v2), 0), nil
	case types.VersionSchemeSemver:
		v1, err := semver.NewVersion(a)
		if err != nil {
			return 0, err
		}
		v2, err := semver.NewVersion(b)
		if err != nil {
			return 0, err
		}
		return cmp.Compare(v1.Compare(v2), 0), nil
	default:
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported version scheme %q", scheme))
	}
}

// compareReleases orders release identifiers numerically. Non-numeric
// releases fall back to a lexical comparison.
func compareReleases(a string, b string) int {
	r1, err1 := strconv.Atoi(a)
	r2, err2 := strconv.Atoi(b)
	if err1 == nil && err2 == nil {
		switch {
		case r1 < r2:
			return -1
		case r1 > r2:
			return 1
		default:
			return 0
		}
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
