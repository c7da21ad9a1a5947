package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var sampleKeys = []string{
	"2.46/chromedriver_linux64.zip",
	"2.46/chromedriver_mac64.zip",
	"2.46/chromedriver_win32.zip",
	"87.0.4280.88/chromedriver_linux64.zip",
	"87.0.4280.88/chromedriver_mac64.zip",
	"87.0.4280.88/chromedriver_mac64_m1.zip",
	"87.0.4280.88/chromedriver_win32.zip",
	"icons/folder.gif",
	"LATEST_RELEASE",
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		expected []string
	}{
		{
			name:     "linux x64",
			platform: Platform{OS: Linux, Arch: "x64"},
			expected: []string{
				"2.46/chromedriver_linux64.zip",
				"87.0.4280.88/chromedriver_linux64.zip",
			},
		},
		{
			name:     "linux x86 drops every 64 bit key",
			platform: Platform{OS: Linux, Arch: "x86"},
			expected: []string{},
		},
		{
			name:     "windows x64",
			platform: Platform{OS: Windows, Arch: "x64"},
			expected: []string{
				"2.46/chromedriver_win32.zip",
				"87.0.4280.88/chromedriver_win32.zip",
			},
		},
		{
			name:     "intel mac rejects apple silicon builds",
			platform: Platform{OS: Mac, Arch: "x64"},
			expected: []string{
				"2.46/chromedriver_mac64.zip",
				"87.0.4280.88/chromedriver_mac64.zip",
			},
		},
		{
			name:     "apple silicon mac accepts both builds",
			platform: Platform{OS: Mac, Arch: "arm64", AppleSilicon: true},
			expected: []string{
				"2.46/chromedriver_mac64.zip",
				"87.0.4280.88/chromedriver_mac64.zip",
				"87.0.4280.88/chromedriver_mac64_m1.zip",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Filter(sampleKeys, tt.platform))
		})
	}
}

func TestIsEligibleRules(t *testing.T) {
	x86 := Platform{OS: Linux, Arch: "x86"}
	require.True(t, IsEligible("2.0/chromedriver_linux32.zip", x86))
	require.False(t, IsEligible("2.0/chromedriver_linux64.zip", x86))

	intelMac := Platform{OS: Mac, Arch: "x64"}
	require.False(t, IsEligible("87.0.4280.88/chromedriver_mac64_m1.zip", intelMac))

	linux := Platform{OS: Linux, Arch: "x64"}
	require.False(t, IsEligible("2.46/chromedriver_mac64.zip", linux))
}

func TestMatchesOSName(t *testing.T) {
	require.True(t, MatchesOSName("2.46/chromedriver_win32.zip", Platform{OS: Windows}))
	require.True(t, MatchesOSName("2.46/chromedriver_mac64.zip", Platform{OS: Mac}))
	require.True(t, MatchesOSName("2.46/chromedriver_linux64.zip", Platform{OS: Linux}))
	require.False(t, MatchesOSName("2.46/chromedriver_linux64.zip", Platform{OS: Windows}))
}
