package packs

import (
	"context"
	"sort"

	goccy "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	apperr "github.com/KirkDiggler/cp2020-sheet/internal/errors"
)

const (
	// Key patterns
	packKeyPrefix = "pack:" // hash of document id -> document JSON
	packIndexKey  = "packs" // set of pack names
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed pack repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{
		client: cfg.Client,
	}
}

// GetDocuments implements Repository
func (r *redisRepository) GetDocuments(ctx context.Context, pack string) ([]*Document, error) {
	if err := validatePack(pack); err != nil {
		return nil, err
	}

	entries, err := r.client.HGetAll(ctx, packKeyPrefix+pack).Result()
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to get pack documents")
	}

	if len(entries) == 0 {
		// An emptied pack has no hash but is still indexed
		exists, err := r.client.SIsMember(ctx, packIndexKey, pack).Result()
		if err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to check pack index")
		}
		if !exists {
			return nil, packNotFound(pack)
		}
		return []*Document{}, nil
	}

	docs := make([]*Document, 0, len(entries))
	for id, data := range entries {
		var doc Document
		if err := goccy.Unmarshal([]byte(data), &doc); err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to deserialize document").
				WithMeta("pack", pack).
				WithMeta("document_id", id)
		}
		docs = append(docs, &doc)
	}
	sortDocuments(docs)

	return docs, nil
}

// SaveDocuments implements Repository
func (r *redisRepository) SaveDocuments(ctx context.Context, pack string, docs []*Document) error {
	if err := validateDocuments(pack, docs); err != nil {
		return err
	}

	ordered := make([]*Document, len(docs))
	copy(ordered, docs)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	fields := make([]any, 0, len(ordered)*2)
	for _, doc := range ordered {
		data, err := goccy.Marshal(doc)
		if err != nil {
			return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to serialize document").
				WithMeta("document_id", doc.ID)
		}
		fields = append(fields, doc.ID, string(data))
	}

	key := packKeyPrefix + pack

	// Replace the hash and index the pack atomically
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(fields) > 0 {
		pipe.HSet(ctx, key, fields...)
	}
	pipe.SAdd(ctx, packIndexKey, pack)

	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to save pack")
	}

	return nil
}

// ListPacks implements Repository
func (r *redisRepository) ListPacks(ctx context.Context) ([]string, error) {
	names, err := r.client.SMembers(ctx, packIndexKey).Result()
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to list packs")
	}
	sort.Strings(names)

	return names, nil
}
