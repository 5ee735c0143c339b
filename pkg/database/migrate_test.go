package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDimensionColumnsIsAdditiveAndIdempotent(t *testing.T) {
	db, err := Open(Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))

	// rows that predate the dimension columns survive the migration
	_, err = db.Exec(`INSERT INTO categories (name) VALUES ('Animals')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO artworks (category_id, artwork) VALUES (1, 'a cat')`)
	require.NoError(t, err)

	require.NoError(t, AddDimensionColumns(db))
	require.NoError(t, AddDimensionColumns(db))

	var text string
	var width *int
	err = db.QueryRow(`SELECT artwork, width FROM artworks WHERE id = 1`).Scan(&text, &width)
	require.NoError(t, err)
	assert.Equal(t, "a cat", text)
	assert.Nil(t, width)

	cols, err := tableColumns(db, "artworks")
	require.NoError(t, err)
	assert.True(t, cols["width"])
	assert.True(t, cols["height"])
}

func TestMigrateIdempotent(t *testing.T) {
	db, err := Open(Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}
