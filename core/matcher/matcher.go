package matcher

import (
	"strconv"
	"strings"

	"github.com/railwayapp/driverpack/core/catalog"
	"github.com/railwayapp/driverpack/core/version"
)

// FindBestMatch picks the single entry whose embedded version equals the
// requested version, applying the platform tie-break rules. The entries are
// expected to have been through catalog.Filter already. An empty string is
// returned when nothing matches.
func FindBestMatch(entries []string, requested string, p catalog.Platform) (string, error) {
	target := version.Normalize(requested)
	if target == "" {
		return "", &InvalidVersionError{Version: requested}
	}

	best := ""
	for _, key := range Candidates(entries, target) {
		if Prefer(best, key, p) {
			best = key
		}
	}

	return best, nil
}

// Candidates returns the entries whose embedded version normalizes to target
func Candidates(entries []string, target string) []string {
	candidates := []string{}
	for _, key := range entries {
		if EntryVersion(key) == target {
			candidates = append(candidates, key)
		}
	}
	return candidates
}

// EntryVersion normalizes the version folder of a catalog key. Folders that are
// already plain semantic versions are not driver releases and yield "".
func EntryVersion(key string) string {
	raw := LeadingSegment(key)
	if version.IsSemver(raw) {
		return ""
	}
	return version.Normalize(raw)
}

// LeadingSegment returns the key up to its first slash
func LeadingSegment(key string) string {
	segment, _, _ := strings.Cut(key, "/")
	return segment
}

// Prefer reports whether candidate should replace best. Both keys must carry
// the same normalized version; best is empty when nothing was chosen yet.
func Prefer(best, candidate string, p catalog.Platform) bool {
	if best == "" {
		return acceptFirst(candidate, p)
	}

	if p.Arch != "x64" {
		return false
	}

	if !strings.Contains(candidate, PreferredSuffix(p)) {
		return false
	}

	return newerBuild(best, candidate)
}

// acceptFirst decides whether a candidate may become the first chosen entry.
// Apple silicon builds are always taken on arm64 macs.
func acceptFirst(candidate string, p catalog.Platform) bool {
	if p.Arch == "arm64" && p.OS == catalog.Mac && strings.Contains(candidate, catalog.AppleSiliconMarker) {
		return true
	}

	return p.Arch == "x64" || !strings.Contains(candidate, p.OSName()+"64")
}

// PreferredSuffix is the OS and arch token preferred on x64 machines.
// There is no win64 chromedriver, so windows prefers win32.
func PreferredSuffix(p catalog.Platform) string {
	if p.OS == catalog.Windows {
		return p.OSName() + "32"
	}
	return p.OSName() + "64"
}

// newerBuild compares the trailing numeric field of both version folders.
// When the folders have a different number of fields the candidate wins.
func newerBuild(best, candidate string) bool {
	bestFields := strings.Split(LeadingSegment(best), ".")
	candidateFields := strings.Split(LeadingSegment(candidate), ".")

	if len(bestFields) != len(candidateFields) {
		return true
	}

	bestBuild, err := strconv.Atoi(bestFields[len(bestFields)-1])
	if err != nil {
		return false
	}

	candidateBuild, err := strconv.Atoi(candidateFields[len(candidateFields)-1])
	if err != nil {
		return false
	}

	return candidateBuild > bestBuild
}
