package matcher

import (
	"errors"
	"testing"

	"github.com/railwayapp/driverpack/core/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	linux64      = catalog.Platform{OS: catalog.Linux, Arch: "x64"}
	linux32      = catalog.Platform{OS: catalog.Linux, Arch: "x86"}
	windows64    = catalog.Platform{OS: catalog.Windows, Arch: "x64"}
	intelMac     = catalog.Platform{OS: catalog.Mac, Arch: "x64"}
	appleSilicon = catalog.Platform{OS: catalog.Mac, Arch: "arm64", AppleSilicon: true}
)

func TestFindBestMatch(t *testing.T) {
	tests := []struct {
		name      string
		entries   []string
		requested string
		platform  catalog.Platform
		expected  string
	}{
		{
			name: "higher trailing build wins on x64",
			entries: []string{
				"70.0.3538.16/chromedriver_linux64.zip",
				"70.0.3538.9/chromedriver_linux64.zip",
			},
			requested: "70.0.3538.9",
			platform:  linux64,
			expected:  "70.0.3538.16/chromedriver_linux64.zip",
		},
		{
			name: "three component request only matches legacy folders",
			entries: []string{
				"70.0.3538.16/chromedriver_linux64.zip",
			},
			requested: "70.0.3538",
			platform:  linux64,
			expected:  "",
		},
		{
			name: "higher trailing build wins regardless of order",
			entries: []string{
				"70.0.3538.9/chromedriver_linux64.zip",
				"70.0.3538.16/chromedriver_linux64.zip",
			},
			requested: "70.0.3538.16",
			platform:  linux64,
			expected:  "70.0.3538.16/chromedriver_linux64.zip",
		},
		{
			name: "legacy version",
			entries: []string{
				"2.45/chromedriver_linux64.zip",
				"2.46/chromedriver_linux64.zip",
			},
			requested: "2.46",
			platform:  linux64,
			expected:  "2.46/chromedriver_linux64.zip",
		},
		{
			name: "windows prefers win32 on x64",
			entries: []string{
				"2.46/chromedriver_win32.zip",
				"2.46/chromedriver_win64.zip",
			},
			requested: "2.46",
			platform:  windows64,
			expected:  "2.46/chromedriver_win32.zip",
		},
		{
			name: "apple silicon build is taken over the intel build",
			entries: []string{
				"87.0.4280.88/chromedriver_mac64.zip",
				"87.0.4280.88/chromedriver_mac64_m1.zip",
			},
			requested: "87.0.4280.88",
			platform:  appleSilicon,
			expected:  "87.0.4280.88/chromedriver_mac64_m1.zip",
		},
		{
			name: "apple silicon build listed first is kept",
			entries: []string{
				"87.0.4280.88/chromedriver_mac64_m1.zip",
				"87.0.4280.88/chromedriver_mac64.zip",
			},
			requested: "87.0.4280.1",
			platform:  appleSilicon,
			expected:  "87.0.4280.88/chromedriver_mac64_m1.zip",
		},
		{
			name: "intel mac",
			entries: []string{
				"87.0.4280.88/chromedriver_mac64.zip",
			},
			requested: "87.0.4280.88",
			platform:  intelMac,
			expected:  "87.0.4280.88/chromedriver_mac64.zip",
		},
		{
			name: "32 bit machine skips 64 suffixed builds",
			entries: []string{
				"2.20/chromedriver_linux64.zip",
				"2.20/chromedriver_linux32.zip",
			},
			requested: "2.20",
			platform:  linux32,
			expected:  "2.20/chromedriver_linux32.zip",
		},
		{
			name: "bare semver folders are skipped",
			entries: []string{
				"1.2.3/chromedriver_linux64.zip",
			},
			requested: "1.2",
			platform:  linux64,
			expected:  "",
		},
		{
			name: "absent version",
			entries: []string{
				"2.46/chromedriver_linux64.zip",
			},
			requested: "999.999.999",
			platform:  linux64,
			expected:  "",
		},
		{
			name: "entries without a version are ignored",
			entries: []string{
				"icons/folder_linux64.gif",
				"2.46/chromedriver_linux64.zip",
			},
			requested: "2.46",
			platform:  linux64,
			expected:  "2.46/chromedriver_linux64.zip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, err := FindBestMatch(tt.entries, tt.requested, tt.platform)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, best)
		})
	}
}

func TestFindBestMatchInvalidVersion(t *testing.T) {
	for _, requested := range []string{"", "latest", "not-a-version"} {
		t.Run(requested, func(t *testing.T) {
			_, err := FindBestMatch([]string{"2.46/chromedriver_linux64.zip"}, requested, linux64)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidVersion))

			var invalid *InvalidVersionError
			require.True(t, errors.As(err, &invalid))
			require.Equal(t, requested, invalid.Version)
		})
	}
}

func TestPreferFirstEntry(t *testing.T) {
	// Non x64 machines skip <os>64 builds for the first pick
	assert.False(t, Prefer("", "2.46/chromedriver_linux64.zip", catalog.Platform{OS: catalog.Linux, Arch: "arm64"}))
	assert.True(t, Prefer("", "2.46/chromedriver_linux32.zip", linux32))
	assert.True(t, Prefer("", "2.46/chromedriver_linux64.zip", linux64))
	assert.True(t, Prefer("", "87.0.4280.88/chromedriver_mac64_m1.zip", appleSilicon))
	assert.False(t, Prefer("", "87.0.4280.88/chromedriver_mac64.zip", appleSilicon))
}

func TestPreferReplacement(t *testing.T) {
	// Only x64 machines replace an existing pick
	assert.False(t, Prefer("70.0.3538.9/chromedriver_mac64_m1.zip", "70.0.3538.16/chromedriver_mac64_m1.zip", appleSilicon))

	// Candidates without the preferred suffix never replace
	assert.False(t, Prefer("2.46/chromedriver_win32.zip", "2.46/chromedriver_win64.zip", windows64))

	assert.True(t, Prefer("70.0.3538.9/chromedriver_linux64.zip", "70.0.3538.16/chromedriver_linux64.zip", linux64))
	assert.False(t, Prefer("70.0.3538.16/chromedriver_linux64.zip", "70.0.3538.9/chromedriver_linux64.zip", linux64))
	assert.False(t, Prefer("70.0.3538.16/chromedriver_linux64.zip", "70.0.3538.16/chromedriver_linux64.zip", linux64))

	// Folders with a different field count always replace
	assert.True(t, Prefer("2.46/chromedriver_linux64.zip", "2.46.0.1/chromedriver_linux64.zip", linux64))
}

func TestPreferredSuffix(t *testing.T) {
	assert.Equal(t, "win32", PreferredSuffix(windows64))
	assert.Equal(t, "linux64", PreferredSuffix(linux64))
	assert.Equal(t, "mac64", PreferredSuffix(intelMac))
}

func TestEntryVersion(t *testing.T) {
	assert.Equal(t, "74.0.3729", EntryVersion("74.0.3729.6/chromedriver_linux64.zip"))
	assert.Equal(t, "2.46.0", EntryVersion("2.46/chromedriver_linux64.zip"))
	assert.Equal(t, "", EntryVersion("1.0.0/chromedriver_linux64.zip"))
	assert.Equal(t, "", EntryVersion("icons/folder.gif"))
	assert.Equal(t, "", EntryVersion("LATEST_RELEASE"))
}
