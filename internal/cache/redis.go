package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"fitnutri/internal/models"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

const recipeListKey = "recipes:approved"

// StoreRecipeList caches the unfiltered approved-recipe listing.
func (r *RedisClient) StoreRecipeList(recipes []models.Recipe, duration time.Duration) error {
	jsonData, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe list: %w", err)
	}

	err = r.client.Set(r.ctx, recipeListKey, jsonData, duration).Err()
	if err != nil {
		return fmt.Errorf("failed to store recipe list in Redis: %w", err)
	}

	return nil
}

// GetRecipeList returns the cached listing; the bool reports a cache hit.
func (r *RedisClient) GetRecipeList() ([]models.Recipe, bool, error) {
	data, err := r.client.Get(r.ctx, recipeListKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil // Key doesn't exist
		}
		return nil, false, fmt.Errorf("failed to get recipe list from Redis: %w", err)
	}

	var recipes []models.Recipe
	if err := json.Unmarshal([]byte(data), &recipes); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal recipe list: %w", err)
	}

	return recipes, true, nil
}

// InvalidateRecipeList drops the cached listing after any recipe mutation.
func (r *RedisClient) InvalidateRecipeList() error {
	return r.client.Del(r.ctx, recipeListKey).Err()
}
