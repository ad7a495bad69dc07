package main

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/leanttro/feiras-de-rua/internal/repository"
	"github.com/leanttro/feiras-de-rua/pkg/config"
	"github.com/leanttro/feiras-de-rua/pkg/logger"
	"github.com/leanttro/feiras-de-rua/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	seedDir := flag.String("dir", filepath.Join("cmd", "seed", "data"), "directory with <table>.json fixtures")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Development); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	marketRepo := repository.NewMarketRepository(db, appLogger)

	appLogger.Info("Starting database seeding...", zap.String("dir", *seedDir))

	cacheFile := filepath.Join(*seedDir, ".seed_cache.json")
	if err := seedTables(ctx, *seedDir, cacheFile, marketRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed tables", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

// ProcessedFile represents a loaded fixture file in cache
type ProcessedFile struct {
	FilePath    string    `json:"file_path"`
	FileHash    string    `json:"file_hash"`
	Rows        int       `json:"rows"`
	ProcessedAt time.Time `json:"processed_at"`
}

// CacheData stores information about loaded fixtures
type CacheData struct {
	ProcessedFiles map[string]ProcessedFile `json:"processed_files"` // key: file path
}

func loadCache(cacheFile string) (*CacheData, error) {
	cache := &CacheData{
		ProcessedFiles: make(map[string]ProcessedFile),
	}

	if _, err := os.Stat(cacheFile); os.IsNotExist(err) {
		return cache, nil
	}

	data, err := os.ReadFile(cacheFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	if len(data) == 0 {
		return cache, nil
	}

	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}

	return cache, nil
}

func saveCache(cacheFile string, cache *CacheData) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(cacheFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

// calculateFileHash calculates MD5 hash of a file
func calculateFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to calculate hash: %w", err)
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// readFixture decodes a JSON array of objects. Numbers are kept as
// json.Number so ids and coordinates reach Postgres unchanged.
func readFixture(path string) ([]map[string]any, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer file.Close()

	dec := json.NewDecoder(file)
	dec.UseNumber()

	var rows []map[string]any
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}

	for _, row := range rows {
		for k, v := range row {
			if n, ok := v.(json.Number); ok {
				row[k] = n.String()
			}
		}
	}
	return rows, nil
}

// fixtureFiles lists the *.json fixtures in dir, sorted by name.
func fixtureFiles(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}

	files := matches[:0]
	for _, m := range matches {
		if strings.HasPrefix(filepath.Base(m), ".") {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)
	return files, nil
}

// seedTables inserts every fixture whose content changed since the last run.
// The table name is the file name without extension.
func seedTables(
	ctx context.Context,
	seedDir string,
	cacheFile string,
	repo *repository.MarketRepository,
	logger *zap.Logger,
) error {
	now := time.Now()

	cache, err := loadCache(cacheFile)
	if err != nil {
		logger.Warn("Failed to load cache, will process all files", zap.Error(err))
		cache = &CacheData{ProcessedFiles: make(map[string]ProcessedFile)}
	}

	files, err := fixtureFiles(seedDir)
	if err != nil {
		return fmt.Errorf("failed to list fixtures: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("No fixtures found", zap.String("dir", seedDir))
		return nil
	}

	for _, path := range files {
		table := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

		fileHash, err := calculateFileHash(path)
		if err != nil {
			logger.Warn("Failed to calculate file hash, will process anyway", zap.String("path", path), zap.Error(err))
		}

		if cached, exists := cache.ProcessedFiles[path]; exists && cached.FileHash == fileHash {
			logger.Info("Fixture already loaded, skipping",
				zap.String("path", path),
				zap.Time("processed_at", cached.ProcessedAt),
			)
			continue
		}

		rows, err := readFixture(path)
		if err != nil {
			logger.Error("Failed to read fixture", zap.String("path", path), zap.Error(err))
			continue
		}

		if err := repo.InsertRows(ctx, table, rows); err != nil {
			logger.Error("Failed to insert fixture rows", zap.String("table", table), zap.Error(err))
			continue
		}

		cache.ProcessedFiles[path] = ProcessedFile{
			FilePath:    path,
			FileHash:    fileHash,
			Rows:        len(rows),
			ProcessedAt: now,
		}
	}

	if err := saveCache(cacheFile, cache); err != nil {
		logger.Warn("Failed to save cache", zap.Error(err))
	} else {
		logger.Info("Cache saved", zap.Int("processed_files", len(cache.ProcessedFiles)))
	}

	return nil
}
