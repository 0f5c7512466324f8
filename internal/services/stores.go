package services

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/cp2020-sheet/internal/config"
	"github.com/KirkDiggler/cp2020-sheet/internal/repositories/packs"
	"github.com/KirkDiggler/cp2020-sheet/internal/uuid"
)

// PackStore is an opened pack repository and the function releasing it
type PackStore struct {
	Repository packs.Repository
	Backend    string
	closeFn    func() error
}

// Close releases the store's connection, if any
func (s *PackStore) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// OpenPackStore picks the pack backend from cfg: Redis when REDIS_URL
// answers a ping, then SQLite when SQLITE_PATH is set, else memory. The
// shipped packs are seeded into whichever store is chosen.
func OpenPackStore(ctx context.Context, cfg *config.Config) (*PackStore, error) {
	store := openRedisStore(ctx, cfg.Redis.URL)

	if store == nil && cfg.SQLite.Path != "" {
		repo, err := packs.OpenSQLite(cfg.SQLite.Path)
		if err != nil {
			log.Printf("Failed to open SQLite at %s: %v", cfg.SQLite.Path, err)
			log.Println("Falling back to in-memory repositories")
		} else {
			log.Printf("Using SQLite at %s for persistence", cfg.SQLite.Path)
			store = &PackStore{Repository: repo, Backend: "sqlite", closeFn: repo.Close}
		}
	}

	if store == nil {
		store = &PackStore{Repository: packs.NewInMemoryRepository(), Backend: "memory"}
	}

	if _, err := packs.Seed(ctx, store.Repository, uuid.NewDocumentIDGenerator()); err != nil {
		_ = store.Close()
		return nil, err
	}

	return store, nil
}

func openRedisStore(ctx context.Context, redisURL string) *PackStore {
	if redisURL == "" {
		log.Println("No REDIS_URL found, skipping Redis")
		return nil
	}

	log.Printf("Connecting to Redis at: %s", redisURL)
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		return nil
	}

	client := redis.NewClient(opts)

	// Test connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		_ = client.Close()
		return nil
	}

	log.Println("Successfully connected to Redis")
	return &PackStore{Repository: packs.NewRedis(client), Backend: "redis", closeFn: client.Close}
}
