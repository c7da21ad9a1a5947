package catalog

import "strings"

// IsEligible reports whether an entry key can run on the platform.
// Both the 32 and 64 bit builds are eligible on a 64 bit machine, and both
// tagged and untagged builds are eligible on Apple silicon.
func IsEligible(key string, p Platform) bool {
	if !strings.Contains(p.Arch, "64") && strings.Contains(key, "64") {
		return false
	}

	if !p.AppleSilicon && strings.Contains(key, AppleSiliconMarker) {
		return false
	}

	return MatchesOSName(key, p)
}

// MatchesOSName reports whether the entry key mentions the platform's OS token
func MatchesOSName(key string, p Platform) bool {
	return strings.Contains(key, p.OSName())
}

// Filter returns the eligible keys in catalog order
func Filter(keys []string, p Platform) []string {
	eligible := []string{}
	for _, key := range keys {
		if IsEligible(key, p) {
			eligible = append(eligible, key)
		}
	}
	return eligible
}
