package install

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-filemutex"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/railwayapp/driverpack/core/catalog"
	"github.com/railwayapp/driverpack/core/fetch"
	"github.com/railwayapp/driverpack/core/matcher"
)

const lockFileName = ".driverpack.lock"

var binaryPatterns = []string{"**/chromedriver", "**/chromedriver.exe"}

type Options struct {
	// URL of the driver archive
	URL string

	// Version used to name the installed binary
	Version string

	// Directory the binary is installed into
	Dir string

	Platform catalog.Platform
	Client   *http.Client
}

// BinaryName returns the file name a driver version is installed under.
// The version must be a plain catalog folder name.
func BinaryName(version string, p catalog.Platform) (string, error) {
	if version == "" || version != strings.TrimSpace(version) ||
		strings.ContainsAny(version, `/\`) || strings.Contains(version, "..") {
		return "", fmt.Errorf("invalid driver version %q", version)
	}

	name := fmt.Sprintf("chromedriver-%s", version)
	if p.OS == catalog.Windows {
		name += ".exe"
	}
	return name, nil
}

// VersionFromURL returns the catalog folder of a download URL resolved against baseURL
func VersionFromURL(downloadURL, baseURL string) string {
	key := strings.TrimPrefix(downloadURL, baseURL)
	return matcher.LeadingSegment(strings.TrimPrefix(key, "/"))
}

// Install downloads the driver archive and extracts its binary into the
// install directory, returning the binary path. An existing binary is reused.
func Install(ctx context.Context, opts Options) (string, error) {
	if opts.URL == "" {
		return "", fmt.Errorf("no driver download URL")
	}

	binaryName, err := BinaryName(opts.Version, opts.Platform)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create install directory: %w", err)
	}

	lock, err := filemutex.New(filepath.Join(opts.Dir, lockFileName))
	if err != nil {
		return "", fmt.Errorf("failed to create install lock: %w", err)
	}
	defer lock.Close()

	if err := lock.Lock(); err != nil {
		return "", fmt.Errorf("failed to lock install directory: %w", err)
	}
	defer lock.Unlock()

	binaryPath := filepath.Join(opts.Dir, binaryName)
	if _, err := os.Stat(binaryPath); err == nil {
		log.Debugf("Driver exists at %s", binaryPath)
		return binaryPath, nil
	}

	log.Debugf("Installing driver %s from %s", opts.Version, opts.URL)

	if err := downloadAndInstall(ctx, opts, binaryPath); err != nil {
		return "", fmt.Errorf("failed to download and install: %w", err)
	}

	log.Debugf("Installed driver %s to %s", opts.Version, binaryPath)

	return binaryPath, nil
}

func downloadAndInstall(ctx context.Context, opts Options, binaryPath string) error {
	stagingDir := filepath.Join(opts.Dir, ".staging-"+uuid.NewString())
	if err := os.MkdirAll(stagingDir, 0755); err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(stagingDir)

	archivePath := filepath.Join(stagingDir, filepath.Base(opts.URL))
	f, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("failed to create archive file: %w", err)
	}

	if err := fetch.Download(ctx, opts.Client, opts.URL, f); err != nil {
		f.Close()
		return err
	}
	f.Close()

	return extractZip(archivePath, stagingDir, binaryPath)
}

func extractZip(archivePath, stagingDir, binaryPath string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}

		if !isDriverBinary(f.Name) {
			continue
		}

		tempPath := filepath.Join(stagingDir, "binary")
		if err := extractFile(f, tempPath); err != nil {
			return err
		}

		if err := os.Chmod(tempPath, 0755); err != nil {
			return fmt.Errorf("failed to set executable permissions: %w", err)
		}

		if err := os.Rename(tempPath, binaryPath); err != nil {
			return fmt.Errorf("failed to move binary into place: %w", err)
		}

		return nil
	}

	return fmt.Errorf("chromedriver binary not found in archive")
}

func isDriverBinary(name string) bool {
	name = strings.TrimPrefix(name, "/")
	for _, pattern := range binaryPatterns {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

func extractFile(f *zip.File, dest string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
