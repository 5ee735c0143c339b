package art

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"asciihub/pkg/models"
)

// ErrNotFound is returned by lookups that match no stored row.
var ErrNotFound = errors.New("artwork not found")

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// EnsureCategory returns the id of the named category, creating the row on
// first sighting. Idempotent on the name uniqueness constraint: calling it
// again with the same name yields the same id.
func (r *Repo) EnsureCategory(ctx context.Context, name string) (int64, error) {
	if _, err := r.DB.ExecContext(ctx,
		`INSERT OR IGNORE INTO categories (name) VALUES (?)`, name,
	); err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}

	var id int64
	err := r.DB.QueryRowContext(ctx,
		`SELECT id FROM categories WHERE name = ?`, name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("select category id: %w", err)
	}
	return id, nil
}

// InsertArtwork appends a new row with null dimensions. There is no dedup;
// ingesting the same source twice stores the artwork twice.
func (r *Repo) InsertArtwork(ctx context.Context, categoryID int64, text string) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO artworks (category_id, artwork) VALUES (?, ?)`,
		categoryID, text,
	)
	if err != nil {
		return fmt.Errorf("insert artwork: %w", err)
	}
	return nil
}

// InsertArtworks appends all texts for one category in a single transaction,
// so a failed ingestion run never leaves a category half written.
func (r *Repo) InsertArtworks(ctx context.Context, categoryID int64, texts []string) error {
	if len(texts) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO artworks (category_id, artwork) VALUES (?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, text := range texts {
		if _, err := stmt.ExecContext(ctx, categoryID, text); err != nil {
			return fmt.Errorf("exec insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// FindArtworkIDByText looks up a stored artwork whose text is byte-for-byte
// identical to the given text. At most one id comes back (the first row if
// duplicates exist); a miss is ErrNotFound.
func (r *Repo) FindArtworkIDByText(ctx context.Context, text string) (int64, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx,
		`SELECT id FROM artworks WHERE artwork = ? LIMIT 1`, text,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("find artwork by text: %w", err)
	}
	return id, nil
}

// UpdateDimensions overwrites width/height unconditionally.
func (r *Repo) UpdateDimensions(ctx context.Context, id int64, width, height int) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE artworks SET width = ?, height = ? WHERE id = ?`,
		width, height, id,
	)
	if err != nil {
		return fmt.Errorf("update dimensions: %w", err)
	}
	return nil
}

// ApplyDimensionUpdates commits one category's worth of dimension updates in
// a single transaction.
func (r *Repo) ApplyDimensionUpdates(ctx context.Context, updates []models.DimensionUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`UPDATE artworks SET width = ?, height = ? WHERE id = ?`,
	)
	if err != nil {
		return fmt.Errorf("prepare update: %w", err)
	}
	defer stmt.Close()

	for _, u := range updates {
		if _, err := stmt.ExecContext(ctx, u.Width, u.Height, u.ID); err != nil {
			return fmt.Errorf("exec update for %d: %w", u.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ListCategories returns all categories ordered by name.
func (r *Repo) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name FROM categories ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// ListArtworks returns the text of every artwork in a category, in insertion
// order. The sampler does not need dimensions.
func (r *Repo) ListArtworks(ctx context.Context, categoryID int64) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT artwork FROM artworks WHERE category_id = ? ORDER BY id ASC`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scan artwork: %w", err)
		}
		out = append(out, text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// DumpArtworks returns every artwork joined with its category name, for the
// export tool.
func (r *Repo) DumpArtworks(ctx context.Context) ([]models.ExportedArtwork, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT a.id, c.name, a.artwork, a.width, a.height
		FROM artworks a
		JOIN categories c ON c.id = a.category_id
		ORDER BY c.name ASC, a.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("dump artworks: %w", err)
	}
	defer rows.Close()

	var out []models.ExportedArtwork
	for rows.Next() {
		var (
			e      models.ExportedArtwork
			width  sql.NullInt64
			height sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.Category, &e.Text, &width, &height); err != nil {
			return nil, fmt.Errorf("scan export row: %w", err)
		}
		if width.Valid {
			w := int(width.Int64)
			e.Width = &w
		}
		if height.Valid {
			h := int(height.Int64)
			e.Height = &h
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}
