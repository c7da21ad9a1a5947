package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const bucketListing = `<?xml version='1.0' encoding='UTF-8'?>
<ListBucketResult xmlns='http://doc.s3.amazonaws.com/2006-03-01'>
	<Name>chromedriver</Name>
	<Contents>
		<Key>2.46/chromedriver_linux64.zip</Key>
		<Size>4500000</Size>
	</Contents>
	<Contents>
		<Key>2.46/chromedriver_mac64.zip</Key>
		<Size>4400000</Size>
	</Contents>
	<Contents>
		<Key>LATEST_RELEASE</Key>
		<Size>12</Size>
	</Contents>
</ListBucketResult>`

func TestParseXML(t *testing.T) {
	keys, err := ParseXML(strings.NewReader(bucketListing))
	require.NoError(t, err)
	require.Equal(t, []string{
		"2.46/chromedriver_linux64.zip",
		"2.46/chromedriver_mac64.zip",
		"LATEST_RELEASE",
	}, keys)
}

func TestParseXMLInvalid(t *testing.T) {
	_, err := ParseXML(strings.NewReader("<ListBucketResult><Contents>"))
	require.Error(t, err)
}
