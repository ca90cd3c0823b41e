package extract

import (
	"context"
	"crypto/sha1"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Cache remembers the results of another Extractor in a SQLite database,
// keyed by the model name and the SHA-1 of the input image
type Cache struct {
	db    *sql.DB
	model string
	next  Extractor
}

// NewCache opens or creates the cache database in file. Results are stored
// under model so switching models doesn't return stale images.
func NewCache(file, model string, next Extractor) (*Cache, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS subject (id INTEGER PRIMARY KEY NOT NULL, model TEXT NOT NULL, sha1 TEXT NOT NULL, image BLOB NOT NULL, UNIQUE(model, sha1))"); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{
		db:    db,
		model: model,
		next:  next,
	}, nil
}

// Extract returns the cached result for b, calling the wrapped Extractor
// and storing its result on a miss. Failures are never cached.
func (c *Cache) Extract(ctx context.Context, b []byte) ([]byte, error) {
	sha := fmt.Sprintf("%X", sha1.Sum(b))

	var out []byte
	switch err := c.db.QueryRowContext(ctx, "SELECT image FROM subject WHERE model = ? AND sha1 = ?", c.model, sha).Scan(&out); err {
	case sql.ErrNoRows:
		out, err := c.next.Extract(ctx, b)
		if err != nil {
			return nil, err
		}
		if _, err := c.db.ExecContext(ctx, "INSERT OR REPLACE INTO subject (model, sha1, image) VALUES (?, ?, ?)", c.model, sha, out); err != nil {
			return nil, err
		}
		return out, nil
	case nil:
		return out, nil
	default:
		return nil, err
	}
}

// Len returns the number of results stored for the current model
func (c *Cache) Len() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM subject WHERE model = ?", c.model).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Purge removes every result stored for the current model
func (c *Cache) Purge() error {
	_, err := c.db.Exec("DELETE FROM subject WHERE model = ?", c.model)
	return err
}

// Close closes the underlying database
func (c *Cache) Close() error {
	return c.db.Close()
}
