package catalog

import (
	"encoding/xml"
	"fmt"
	"io"
)

// ListBucketResult is the bucket listing document served by the driver storage
type ListBucketResult struct {
	XMLName  xml.Name `xml:"ListBucketResult"`
	Name     string   `xml:"Name"`
	Contents []struct {
		Key  string `xml:"Key"`
		Size int64  `xml:"Size"`
	} `xml:"Contents"`
}

// ParseXML reads a bucket listing and returns its entry keys in document order
func ParseXML(r io.Reader) ([]string, error) {
	var result ListBucketResult
	if err := xml.NewDecoder(r).Decode(&result); err != nil {
		return nil, fmt.Errorf("error parsing catalog: %w", err)
	}

	keys := make([]string, 0, len(result.Contents))
	for _, item := range result.Contents {
		if item.Key != "" {
			keys = append(keys, item.Key)
		}
	}

	return keys, nil
}
