package fetch

import (
	"bytes"
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/railwayapp/driverpack/core/catalog"
)

// CatalogFetcher downloads the bucket listing and returns its entry keys
type CatalogFetcher struct {
	URL    string
	Client *http.Client
}

func NewCatalogFetcher(url string, client *http.Client) *CatalogFetcher {
	return &CatalogFetcher{URL: url, Client: client}
}

func (f *CatalogFetcher) FetchCatalog(ctx context.Context) ([]string, error) {
	var body bytes.Buffer
	if err := Download(ctx, f.Client, f.URL, &body); err != nil {
		return nil, err
	}

	keys, err := catalog.ParseXML(&body)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid catalog at %s", f.URL)
	}

	return keys, nil
}
