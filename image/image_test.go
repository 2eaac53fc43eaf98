package image

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zkfairdomains/fns-metadata/schema"
)

func TestFormatter_Format(t *testing.T) {
	f := NewFormatter()
	rec := &schema.DomainRecord{Name: "alice.zkf"}

	img, err := f.Format(rec, false)
	assert.NoError(t, err)
	assert.Nil(t, img)

	img, err = f.Format(rec, true)
	require.NoError(t, err)
	assert.Equal(t, MimeTypeSVG, img.MimeType)
	assert.Contains(t, string(img.Data), ">alice.zkf</text>")

	uri := img.DataURI()
	require.True(t, strings.HasPrefix(uri, "data:image/svg+xml;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/svg+xml;base64,"))
	require.NoError(t, err)
	assert.Equal(t, img.Data, raw)
}

func TestFormatter_SVGEscapesName(t *testing.T) {
	svg, err := NewFormatter().SVG(&schema.DomainRecord{Name: "<b>&.zkf"})
	require.NoError(t, err)
	assert.NotContains(t, string(svg), "<b>")
	assert.Contains(t, string(svg), "&lt;b&gt;&amp;.zkf")
}

func TestFormatter_SVGSubdomain(t *testing.T) {
	svg, err := NewFormatter().SVG(&schema.DomainRecord{Name: "pay.alice.zkf"})
	require.NoError(t, err)
	assert.Contains(t, string(svg), ">pay.</text>")
	assert.Contains(t, string(svg), ">alice.zkf</text>")
}

func TestFontSize(t *testing.T) {
	assert.Equal(t, maxFontSize, FontSize("alice.zkf"))
	assert.Equal(t, 16, FontSize("abcdefghijklmnopqrstuv"))
	assert.Equal(t, minFontSize, FontSize(strings.Repeat("a", 100)))
}
