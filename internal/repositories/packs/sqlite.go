package packs

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"

	goccy "github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	apperr "github.com/KirkDiggler/cp2020-sheet/internal/errors"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS packs (
	name TEXT PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS pack_documents (
	pack        TEXT NOT NULL REFERENCES packs(name) ON DELETE CASCADE,
	id          TEXT NOT NULL,
	name        TEXT NOT NULL,
	type        TEXT NOT NULL,
	system_json TEXT NOT NULL,
	PRIMARY KEY (pack, id)
);
CREATE INDEX IF NOT EXISTS pack_documents_by_name ON pack_documents (pack, name, id);
`

// SQLiteRepository stores packs in a SQLite database file
type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
// ":memory:" keeps everything in a single in-process connection.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, apperr.InvalidArgument("sqlite path is required")
	}

	memory := path == ":memory:"
	dsn := path
	if !memory {
		dsn = filepath.Clean(path)
	}
	dsn += "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to open sqlite db")
	}
	if memory {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to ping sqlite db")
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to create sqlite schema")
	}

	return &SQLiteRepository{db: db}, nil
}

// Close releases the database
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// GetDocuments implements Repository
func (r *SQLiteRepository) GetDocuments(ctx context.Context, pack string) ([]*Document, error) {
	if err := validatePack(pack); err != nil {
		return nil, err
	}

	var name string
	err := r.db.QueryRowContext(ctx, `SELECT name FROM packs WHERE name = ?`, pack).Scan(&name)
	if err == sql.ErrNoRows {
		return nil, packNotFound(pack)
	}
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to look up pack")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, type, system_json FROM pack_documents WHERE pack = ? ORDER BY name, id`,
		pack,
	)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to query pack documents")
	}
	defer rows.Close()

	docs := []*Document{}
	for rows.Next() {
		var doc Document
		var systemJSON string
		if err := rows.Scan(&doc.ID, &doc.Name, &doc.Type, &systemJSON); err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to scan document")
		}
		if err := goccy.Unmarshal([]byte(systemJSON), &doc.System); err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to deserialize document").
				WithMeta("document_id", doc.ID)
		}
		docs = append(docs, &doc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to read pack documents")
	}

	return docs, nil
}

// SaveDocuments implements Repository
func (r *SQLiteRepository) SaveDocuments(ctx context.Context, pack string, docs []*Document) (err error) {
	if err := validateDocuments(pack, docs); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to begin transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `INSERT OR IGNORE INTO packs (name) VALUES (?)`, pack); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to create pack")
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM pack_documents WHERE pack = ?`, pack); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to clear pack")
	}

	for _, doc := range docs {
		system := doc.System
		if system == nil {
			system = map[string]any{}
		}
		var systemJSON []byte
		systemJSON, err = goccy.Marshal(system)
		if err != nil {
			return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to serialize document").
				WithMeta("document_id", doc.ID)
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO pack_documents (pack, id, name, type, system_json) VALUES (?, ?, ?, ?, ?)`,
			pack, doc.ID, doc.Name, doc.Type, string(systemJSON),
		); err != nil {
			return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to insert document").
				WithMeta("document_id", doc.ID)
		}
	}

	if err = tx.Commit(); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to commit pack")
	}

	return nil
}

// ListPacks implements Repository
func (r *SQLiteRepository) ListPacks(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM packs ORDER BY name`)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to list packs")
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to scan pack name")
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to read packs")
	}

	return names, nil
}
