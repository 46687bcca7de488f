package main

import (
	"context"
	"io/fs"
	"log"
	"os"

	"github.com/willianpsouza/VocabularyPlatform/internal/adapters/postgres"
	"github.com/willianpsouza/VocabularyPlatform/internal/pkg/config"
	"github.com/willianpsouza/VocabularyPlatform/migrations"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate [up|down]")
	}

	direction := postgres.Direction(os.Args[1])
	if direction != postgres.Up && direction != postgres.Down {
		log.Fatal("Usage: migrate [up|down]")
	}

	cfg := config.Load()

	pool, err := postgres.Connect(context.Background(), cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// A migrations directory on disk overrides the embedded copy.
	var fsys fs.FS = migrations.FS
	for _, dir := range []string{"/app/migrations", "migrations"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			fsys = os.DirFS(dir)
			break
		}
	}

	if err := postgres.Migrate(context.Background(), pool, fsys, direction); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations complete")
}
