package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"sandpad/internal/database/repository"
)

// starter project contents for a fresh database.
const (
	starterHTML = `<!DOCTYPE html>
<html>
  <head>
    <link rel="stylesheet" href="style.css" />
  </head>
  <body>
    <h1>Hello, sandpad</h1>
    <script src="script.js"></script>
  </body>
</html>
`
	starterCSS = `body {
  font-family: sans-serif;
  margin: 2rem;
}
`
	starterJS = `console.log("hello from sandpad");
`
)

// SeedDefaults ensures a new database starts with a usable project.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewFileRepo(db)
	existing, err := repo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}
	now := Now()
	defaults := []repository.FileRecord{
		{Name: "index.html", Content: starterHTML, Selected: true},
		{Name: "style.css", Content: starterCSS},
		{Name: "script.js", Content: starterJS},
	}
	// All three starter files or none.
	return WithTx(db, func(tx *sql.Tx) error {
		for _, f := range defaults {
			id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("file:"+f.Name)).String()
			_, err := tx.ExecContext(ctx, `
			INSERT INTO files(id, name, label, hidden, selected, content, created_at, updated_at)
			VALUES (?, ?, '', 0, ?, ?, ?, ?)`,
				id, f.Name, f.Selected, f.Content, now, now)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
