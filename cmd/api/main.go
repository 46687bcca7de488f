package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/willianpsouza/VocabularyPlatform/internal/adapters/dictionary"
	"github.com/willianpsouza/VocabularyPlatform/internal/adapters/http/handlers"
	"github.com/willianpsouza/VocabularyPlatform/internal/adapters/postgres"
	redisadapter "github.com/willianpsouza/VocabularyPlatform/internal/adapters/redis"
	"github.com/willianpsouza/VocabularyPlatform/internal/adapters/translation"
	"github.com/willianpsouza/VocabularyPlatform/internal/app"
	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
	"github.com/willianpsouza/VocabularyPlatform/internal/pkg/config"
)

func main() {
	cfg := config.Load()

	log.Printf("Starting %s (env=%s)", cfg.App.Name, cfg.App.Env)

	// PostgreSQL
	dbPool, err := postgres.Connect(context.Background(), cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbPool.Close()
	log.Println("Connected to PostgreSQL")

	checks := map[string]handlers.Check{
		"postgres": dbPool.Ping,
	}

	// Redis is optional; without it dictionary lookups are not cached.
	var cache domain.Cache
	if cfg.Redis.URL != "" {
		redisClient, err := redisadapter.Connect(context.Background(), cfg.Redis.URL)
		if err != nil {
			log.Printf("Redis unavailable, dictionary cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			cache = redisadapter.NewCache(redisClient, cfg.Redis.CacheTTL)
			checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
			log.Println("Connected to Redis")
		}
	}

	// Repositories
	domainRepo := postgres.NewDomainRepository(dbPool, cfg.Database.QueryTimeout)
	vocabRepo := postgres.NewVocabularyRepository(dbPool, cfg.Database.QueryTimeout)

	// External collaborators
	translator := translation.NewStaticTranslator()
	dictionaryClient := dictionary.NewClient(cfg.Dictionary)

	// Services
	domainService := app.NewDomainService(domainRepo)
	vocabService := app.NewVocabularyService(vocabRepo, translator)
	translationService := app.NewTranslationService(translator)
	dictionaryService := app.NewDictionaryService(dictionaryClient, cache)
	maintenanceService := app.NewMaintenanceService(domainRepo, vocabRepo)

	auditor := app.NewAuditor(maintenanceService, cfg.Audit.Schedule, cfg.Database.QueryTimeout)
	if err := auditor.Start(); err != nil {
		log.Fatalf("Invalid AUDIT_SCHEDULE %q: %v", cfg.Audit.Schedule, err)
	}

	router := handlers.NewRouter(cfg, handlers.Handlers{
		Health:     handlers.NewHealthHandler(cfg, checks),
		Domain:     handlers.NewDomainHandler(domainService),
		Vocabulary: handlers.NewVocabularyHandler(domainService, vocabService),
		Translate:  handlers.NewTranslateHandler(translationService, dictionaryService),
	})

	// Server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down server...")

	auditor.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
