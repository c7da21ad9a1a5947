package fetch

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/stretchr/objx"
)

// LatestVersionFetcher reads the latest published driver version. The
// endpoint either serves the version as plain text or, when Path is set, a
// JSON document holding the version at that dotted path.
type LatestVersionFetcher struct {
	URL    string
	Path   string
	Client *http.Client
}

func NewLatestVersionFetcher(url, path string, client *http.Client) *LatestVersionFetcher {
	return &LatestVersionFetcher{URL: url, Path: path, Client: client}
}

func (f *LatestVersionFetcher) FetchLatest(ctx context.Context) (string, error) {
	var body bytes.Buffer
	if err := Download(ctx, f.Client, f.URL, &body); err != nil {
		return "", err
	}

	if f.Path == "" {
		return strings.TrimSpace(body.String()), nil
	}

	doc, err := objx.FromJSON(body.String())
	if err != nil {
		return "", errors.Wrapf(err, "latest version response from %s is not JSON", f.URL)
	}

	value := doc.Get(f.Path)
	if !value.IsStr() {
		return "", errors.Errorf("no version at %q in %s", f.Path, f.URL)
	}

	return strings.TrimSpace(value.Str()), nil
}
