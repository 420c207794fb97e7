package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"sandpad/internal/database"
	"sandpad/internal/database/repository"
)

// testRepo opens a throwaway sqlite database with the files schema applied.
func testRepo(t *testing.T) (*repository.FileRepo, *sql.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sandpad-test.db")
	db, err := database.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewFileRepo(db), db
}

func record(name string) repository.FileRecord {
	now := database.Now()
	return repository.FileRecord{
		ID:        uuid.NewString(),
		Name:      name,
		Content:   "// " + name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUpsertAndList(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()
	for _, n := range []string{"script.js", "index.html", "style.css"} {
		if err := repo.Upsert(ctx, record(n)); err != nil {
			t.Fatalf("upsert %s: %v", n, err)
		}
	}
	files, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("len = %d, want 3", len(files))
	}
	// Name order is the repository's only ordering guarantee.
	if files[0].Name != "index.html" || files[2].Name != "style.css" {
		t.Fatalf("unexpected order: %s, %s, %s", files[0].Name, files[1].Name, files[2].Name)
	}
}

func TestUpsertUpdatesExistingRow(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()
	f := record("a.js")
	if err := repo.Upsert(ctx, f); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	f.Content = "updated"
	if err := repo.Upsert(ctx, f); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	got, err := repo.ByName(ctx, "a.js")
	if err != nil || got == nil {
		t.Fatalf("by name: %v, %v", got, err)
	}
	if got.Content != "updated" {
		t.Fatalf("content = %q", got.Content)
	}
	if err := repo.SetContent(ctx, "a.js", "patched", database.Now()); err != nil {
		t.Fatalf("set content: %v", err)
	}
	if got, _ := repo.ByName(ctx, "a.js"); got == nil || got.Content != "patched" {
		t.Fatalf("set content did not stick")
	}
}

func TestRenameAndDelete(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()
	if err := repo.Upsert(ctx, record("a.js")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Rename(ctx, "a.js", "app.js", database.Now()); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if got, _ := repo.ByName(ctx, "a.js"); got != nil {
		t.Fatalf("old name still resolves")
	}
	if got, _ := repo.ByName(ctx, "app.js"); got == nil {
		t.Fatalf("new name does not resolve")
	}
	if err := repo.Delete(ctx, "app.js"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	files, _ := repo.List(ctx)
	if len(files) != 0 {
		t.Fatalf("len = %d after delete, want 0", len(files))
	}
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	repo, db := testRepo(t)
	ctx := context.Background()
	if err := database.SeedDefaults(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	files, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("len = %d, want 3 starter files", len(files))
	}
	var pinned *repository.FileRecord
	for i := range files {
		if files[i].Name == "index.html" {
			pinned = &files[i]
		}
	}
	if pinned == nil || !pinned.Selected {
		t.Fatalf("starter project must mark index.html selected")
	}
}
