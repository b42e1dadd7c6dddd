package faq

import (
	"context"
	"encoding/json"
	"fmt"

	"support-chat-backend/internal/env"
	"support-chat-backend/internal/model"

	"github.com/go-redis/redis/v8"
)

const (
	indexKey      = "faq:index"
	itemKeyPrefix = "faq:item:"
)

// Entry is an indexed FAQ together with its embedding vector.
type Entry struct {
	FAQ       model.FAQ
	Embedding []float64
}

type Repository interface {
	PutEntries(ctx context.Context, entries []Entry) error
	ListEntries(ctx context.Context) ([]Entry, error)
}

// RedisRepository stores one hash per FAQ plus a set of known ids. The
// FAQ corpus is small enough that search loads every entry and ranks
// client-side.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository() *RedisRepository {
	return &RedisRepository{
		client: redis.NewClient(&redis.Options{
			Addr:     env.MustGet(env.FAQRedisURL),
			Password: env.Get(env.FAQRedisPass),
		}),
	}
}

func NewRedisRepositoryWithClient(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func (r *RedisRepository) PutEntries(ctx context.Context, entries []Entry) error {
	pipe := r.client.TxPipeline()
	for _, entry := range entries {
		embedding, err := json.Marshal(entry.Embedding)
		if err != nil {
			return fmt.Errorf("marshal embedding %s: %w", entry.FAQ.ID, err)
		}
		pipe.HSet(ctx, itemKeyPrefix+entry.FAQ.ID, map[string]interface{}{
			"question":    entry.FAQ.Question,
			"answer":      entry.FAQ.Answer,
			"shortAnswer": entry.FAQ.ShortAnswer,
			"linkUrl":     entry.FAQ.LinkURL,
			"embedding":   string(embedding),
		})
		pipe.SAdd(ctx, indexKey, entry.FAQ.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store faq entries: %w", err)
	}
	return nil
}

func (r *RedisRepository) ListEntries(ctx context.Context) ([]Entry, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list faq ids: %w", err)
	}

	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		fields, err := r.client.HGetAll(ctx, itemKeyPrefix+id).Result()
		if err != nil {
			return nil, fmt.Errorf("load faq %s: %w", id, err)
		}
		if len(fields) == 0 {
			continue
		}

		var embedding []float64
		if raw := fields["embedding"]; raw != "" {
			if err := json.Unmarshal([]byte(raw), &embedding); err != nil {
				return nil, fmt.Errorf("decode embedding %s: %w", id, err)
			}
		}

		entries = append(entries, Entry{
			FAQ: model.FAQ{
				ID:          id,
				Question:    fields["question"],
				Answer:      fields["answer"],
				ShortAnswer: fields["shortAnswer"],
				LinkURL:     fields["linkUrl"],
			},
			Embedding: embedding,
		})
	}
	return entries, nil
}
