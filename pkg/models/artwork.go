package models

// Category is a named grouping of artworks, mirroring the categories table.
// Rows are created on first sighting during ingestion and never deleted.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Artwork is a single piece of ASCII text content as stored in the database.
// Width/Height stay nil until the dimension reconciler finds an exact text
// match on the source site.
type Artwork struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"category_id"`
	Text       string `json:"artwork"`
	Width      *int   `json:"width,omitempty"`
	Height     *int   `json:"height,omitempty"`
}

// ExportedArtwork is an artwork row joined with its category name, the shape
// written by the export tool.
type ExportedArtwork struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Text     string `json:"artwork"`
	Width    *int   `json:"width,omitempty"`
	Height   *int   `json:"height,omitempty"`
}

// DimensionUpdate pairs a stored artwork id with freshly scraped dimensions.
type DimensionUpdate struct {
	ID     int64
	Width  int
	Height int
}

// ArtworkRecord is the scraper-side form of an artwork: the literal text of a
// pre block plus, in dimension mode, the parsed "Dimensions: W x H" pair.
type ArtworkRecord struct {
	Text   string
	Width  int
	Height int
	// HasDimensions is false for records extracted in ingestion mode, where
	// the metadata block is never consulted.
	HasDimensions bool
}
