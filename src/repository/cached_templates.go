package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"Backend-FormBuilder/src/models"

	"github.com/redis/go-redis/v9"
)

// TemplateCache stores rendered templates by id.
type TemplateCache interface {
	Get(ctx context.Context, id string) (*models.Template, bool, error)
	Set(ctx context.Context, t *models.Template) error
	Delete(ctx context.Context, id string) error
}

// RedisTemplateCache keeps JSON-encoded templates under "template:<id>".
type RedisTemplateCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTemplateCache(client *redis.Client, ttl time.Duration) *RedisTemplateCache {
	return &RedisTemplateCache{client: client, ttl: ttl}
}

func templateKey(id string) string {
	return fmt.Sprintf("template:%s", id)
}

func (c *RedisTemplateCache) Get(ctx context.Context, id string) (*models.Template, bool, error) {
	raw, err := c.client.Get(ctx, templateKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached template: %w", err)
	}

	var t models.Template
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached template: %w", err)
	}
	return &t, true, nil
}

func (c *RedisTemplateCache) Set(ctx context.Context, t *models.Template) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, templateKey(t.ID.Hex()), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache template: %w", err)
	}
	return nil
}

func (c *RedisTemplateCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, templateKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to evict template: %w", err)
	}
	return nil
}

// CachedTemplateStore is a read-through cache in front of a TemplateStore.
// Cache failures are logged and never fail the request.
type CachedTemplateStore struct {
	TemplateStore
	cache TemplateCache
}

func NewCachedTemplateStore(next TemplateStore, cache TemplateCache) *CachedTemplateStore {
	return &CachedTemplateStore{TemplateStore: next, cache: cache}
}

func (s *CachedTemplateStore) GetTemplate(ctx context.Context, id string) (*models.Template, error) {
	t, ok, err := s.cache.Get(ctx, id)
	if err != nil {
		log.Println("⚠️ template cache read failed:", err)
	}
	if ok {
		return t, nil
	}

	t, err = s.TemplateStore.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, t); err != nil {
		log.Println("⚠️ template cache write failed:", err)
	}
	return t, nil
}

func (s *CachedTemplateStore) UpdateTemplate(ctx context.Context, id string, t *models.Template) (*models.Template, error) {
	updated, err := s.TemplateStore.UpdateTemplate(ctx, id, t)
	s.evict(ctx, id)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *CachedTemplateStore) DeleteTemplate(ctx context.Context, id string) error {
	err := s.TemplateStore.DeleteTemplate(ctx, id)
	s.evict(ctx, id)
	return err
}

func (s *CachedTemplateStore) evict(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, id); err != nil {
		log.Println("⚠️ template cache evict failed:", err)
	}
}
