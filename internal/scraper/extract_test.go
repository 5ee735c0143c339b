package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBrowseHTML = `<!doctype html><html><body>
<a href="/index.php">Home</a>
<a href="cat.php?category_id=1">Animals (42)</a>
<a href="cat.php?category_id=2">Vehicles</a>
<a href="https://asciiart.website/cat.php?category_id=3">Holiday (7)</a>
<a href="about.php">About</a>
</body></html>`

func TestExtractCategoryLinks(t *testing.T) {
	links, err := ExtractCategoryLinks(strings.NewReader(sampleBrowseHTML), "https://asciiart.website")
	require.NoError(t, err)
	require.Len(t, links, 3)

	assert.Equal(t, CategoryLink{Name: "Animals", URL: "https://asciiart.website/cat.php?category_id=1"}, links[0])
	assert.Equal(t, CategoryLink{Name: "Vehicles", URL: "https://asciiart.website/cat.php?category_id=2"}, links[1])
	// absolute hrefs pass through untouched
	assert.Equal(t, CategoryLink{Name: "Holiday", URL: "https://asciiart.website/cat.php?category_id=3"}, links[2])
}

func TestNormalizeCategoryName(t *testing.T) {
	assert.Equal(t, "Animals", NormalizeCategoryName("Animals (42)"))
	assert.Equal(t, "Animals", NormalizeCategoryName("  Animals  "))
	assert.Equal(t, "Vehicles", NormalizeCategoryName("Vehicles"))
	assert.Equal(t, "Cats & Dogs", NormalizeCategoryName("Cats & Dogs (3)"))
}

const sampleCategoryHTML = `<!doctype html><html><body>
<div class="adu-artwork-display">
  <pre class="adu-artwork-pre"> /\_/\
( o.o )</pre>
  <div class="adu-artwork-metadata">
    <p>Artist: unknown</p>
    <p>Dimensions: 7 x 2</p>
  </div>
</div>
<div class="adu-artwork-display">
  <pre class="adu-artwork-pre">   </pre>
  <div class="adu-artwork-metadata"><p>Dimensions: 3 x 1</p></div>
</div>
<div class="adu-artwork-display">
  <pre class="adu-artwork-pre">second piece</pre>
  <div class="adu-artwork-metadata">
    <p>Dimensions: twelve x 1</p>
  </div>
</div>
<div class="adu-artwork-display">
  <pre class="adu-artwork-pre">no metadata here</pre>
</div>
</body></html>`

func TestExtractArtworks(t *testing.T) {
	artworks, err := ExtractArtworks(strings.NewReader(sampleCategoryHTML))
	require.NoError(t, err)

	// whitespace-only entry is dropped, the rest keep document order
	require.Len(t, artworks, 3)
	assert.Equal(t, " /\\_/\\\n( o.o )", artworks[0].Text)
	assert.Equal(t, "second piece", artworks[1].Text)
	assert.Equal(t, "no metadata here", artworks[2].Text)
	assert.False(t, artworks[0].HasDimensions)
}

func TestExtractArtworksEmptyPage(t *testing.T) {
	artworks, err := ExtractArtworks(strings.NewReader(`<html><body><p>nothing</p></body></html>`))
	require.NoError(t, err)
	assert.Empty(t, artworks)
}

func TestExtractArtworksWithDimensions(t *testing.T) {
	artworks, err := ExtractArtworksWithDimensions(strings.NewReader(sampleCategoryHTML))
	require.NoError(t, err)

	// only the first container has text, metadata and a parseable label
	require.Len(t, artworks, 1)
	assert.Equal(t, " /\\_/\\\n( o.o )", artworks[0].Text)
	assert.Equal(t, 7, artworks[0].Width)
	assert.Equal(t, 2, artworks[0].Height)
	assert.True(t, artworks[0].HasDimensions)
}

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		label   string
		width   int
		height  int
		wantErr bool
	}{
		{label: "Dimensions: 29 x 7", width: 29, height: 7},
		{label: "Dimensions: 1 x 1", width: 1, height: 1},
		{label: "Dimensions:120x47", width: 120, height: 47},
		{label: "Dimensions: 29 7", wantErr: true},
		{label: "Dimensions: w x h", wantErr: true},
		{label: "Dimensions: 29 x seven", wantErr: true},
		{label: "Dimensions: 0 x 7", wantErr: true},
		{label: "Dimensions: -3 x 7", wantErr: true},
		{label: "no colon here", wantErr: true},
	}

	for _, tt := range tests {
		w, h, err := ParseDimensions(tt.label)
		if tt.wantErr {
			assert.Error(t, err, tt.label)
			continue
		}
		require.NoError(t, err, tt.label)
		assert.Equal(t, tt.width, w, tt.label)
		assert.Equal(t, tt.height, h, tt.label)
	}
}
