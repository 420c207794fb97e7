package repository

import (
	"context"
	"database/sql"
	"time"
)

// FileRecord is a project file row. Tab order is deliberately not stored:
// ordering lives only in the in-memory project collection.
type FileRecord struct {
	ID        string
	Name      string
	Label     string
	Hidden    bool
	Selected  bool
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FileRepo handles project files.
type FileRepo struct {
	db *sql.DB
}

func NewFileRepo(db *sql.DB) *FileRepo {
	return &FileRepo{db: db}
}

func (r *FileRepo) Upsert(ctx context.Context, f FileRecord) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO files(id, name, label, hidden, selected, content, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 label=excluded.label,
	 hidden=excluded.hidden,
	 selected=excluded.selected,
	 content=excluded.content,
	 updated_at=excluded.updated_at;
	`, f.ID, f.Name, f.Label, f.Hidden, f.Selected, f.Content, f.CreatedAt, f.UpdatedAt)
	return err
}

// List returns all files in name order. The caller establishes the tab
// order; the repository only guarantees a stable, deterministic scan.
func (r *FileRepo) List(ctx context.Context) ([]FileRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, label, hidden, selected, content, created_at, updated_at
	FROM files ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []FileRecord
	for rows.Next() {
		var f FileRecord
		if err := rows.Scan(&f.ID, &f.Name, &f.Label, &f.Hidden, &f.Selected, &f.Content, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *FileRepo) ByName(ctx context.Context, name string) (*FileRecord, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, name, label, hidden, selected, content, created_at, updated_at
	FROM files WHERE name = ?`, name)
	var f FileRecord
	err := row.Scan(&f.ID, &f.Name, &f.Label, &f.Hidden, &f.Selected, &f.Content, &f.CreatedAt, &f.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FileRepo) Rename(ctx context.Context, oldName, newName string, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE files SET name = ?, updated_at = ? WHERE name = ?`, newName, now, oldName)
	return err
}

func (r *FileRepo) SetHidden(ctx context.Context, name string, hidden bool, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE files SET hidden = ?, updated_at = ? WHERE name = ?`, hidden, now, name)
	return err
}

func (r *FileRepo) SetContent(ctx context.Context, name, content string, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE files SET content = ?, updated_at = ? WHERE name = ?`, content, now, name)
	return err
}

func (r *FileRepo) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE name = ?`, name)
	return err
}
