package database

import (
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS artworks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	category_id INTEGER NOT NULL,
	artwork TEXT NOT NULL,
	FOREIGN KEY (category_id) REFERENCES categories(id)
);

CREATE INDEX IF NOT EXISTS idx_category_id ON artworks(category_id);
`

// Migrate creates the base schema. Safe to call on an already-built database.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// AddDimensionColumns adds the width/height columns to the artworks table if
// they are not there yet. Purely additive: existing rows keep their text and
// start out with NULL dimensions. Calling it again is a no-op.
func AddDimensionColumns(db *sql.DB) error {
	cols, err := tableColumns(db, "artworks")
	if err != nil {
		return err
	}

	if !cols["width"] {
		if _, err := db.Exec(`ALTER TABLE artworks ADD COLUMN width INTEGER`); err != nil {
			return fmt.Errorf("add width column: %w", err)
		}
	}
	if !cols["height"] {
		if _, err := db.Exec(`ALTER TABLE artworks ADD COLUMN height INTEGER`); err != nil {
			return fmt.Errorf("add height column: %w", err)
		}
	}
	return nil
}

func tableColumns(db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.Query(fmt.Sprintf(`PRAGMA table_info(%s)`, table))
	if err != nil {
		return nil, fmt.Errorf("table_info %s: %w", table, err)
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scan table_info: %w", err)
		}
		cols[name] = true
	}
	return cols, rows.Err()
}
