package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"sandpad/internal/config"
	"sandpad/internal/database"
	"sandpad/internal/database/repository"
	"sandpad/internal/logging"
	"sandpad/internal/project"
	"sandpad/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, logCloser, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logCloser.Close()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	fileRepo := repository.NewFileRepo(db)
	records, err := fileRepo.List(ctx)
	if err != nil {
		log.Fatalf("list files: %v", err)
	}

	files := make([]project.File, 0, len(records))
	for _, r := range records {
		files = append(files, project.File{
			ID:       r.ID,
			Name:     r.Name,
			Label:    r.Label,
			Hidden:   r.Hidden,
			Selected: r.Selected,
			Content:  r.Content,
		})
	}

	proj := project.New()
	proj.Load(files)
	logger.WithField("files", len(files)).Info("project loaded")

	p := tea.NewProgram(
		tui.NewModel(ctx, cfg, logger, fileRepo, proj),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
