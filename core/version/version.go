package version

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	// Legacy chromedriver releases are numbered MAJOR.MINOR (e.g. 2.46)
	legacyPattern = regexp.MustCompile(`(\d+\.\d+)`)

	// Modern releases are numbered MAJOR.MINOR.BUILD.PATCH (e.g. 74.0.3729.6)
	modernPattern = regexp.MustCompile(`(\d+\.\d+\.\d+)\.\d+`)
)

// Normalize converts a loosely formatted driver version into a three component
// semantic version. An empty string is returned when no version can be found.
func Normalize(raw string) string {
	normalized := ""

	if match := legacyPattern.FindStringSubmatch(raw); match != nil {
		normalized = match[1] + ".0"
	}

	// The four component form wins when both patterns match
	if match := modernPattern.FindStringSubmatch(raw); match != nil {
		normalized = match[1]
	}

	return normalized
}

// IsSemver reports whether s is already a valid semantic version on its own
func IsSemver(s string) bool {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if s == "" {
		return false
	}

	_, err := semver.StrictNewVersion(s)
	return err == nil
}

// Compare orders two normalized versions, returning -1, 0 or 1.
// Versions that cannot be parsed sort before every valid version.
func Compare(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)

	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a, b)
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}

	return va.Compare(vb)
}
