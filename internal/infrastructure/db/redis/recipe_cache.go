package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/ports"
)

const (
	recipeListKey     = "kusina:recipes:admin-list"
	recipeGenKey      = "kusina:recipes:admin-list:gen"
	defaultRecipesTTL = 5 * time.Minute
)

// setIfGeneration writes the list only while the generation counter still
// holds the value the caller read. A missing counter counts as 0.
var setIfGeneration = redis.NewScript(`
local current = redis.call("GET", KEYS[1]) or "0"
if current ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
return 1
`)

// RecipeCache stores the admin recipe listing as a single JSON value.
type RecipeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRecipeCache wraps client. A non-positive ttl uses defaultRecipesTTL.
func NewRecipeCache(client *redis.Client, ttl time.Duration) *RecipeCache {
	if ttl <= 0 {
		ttl = defaultRecipesTTL
	}
	return &RecipeCache{client: client, ttl: ttl}
}

func (c *RecipeCache) Get(ctx context.Context) ([]ports.RecipeSummary, bool, error) {
	raw, err := c.client.Get(ctx, recipeListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("recipe cache get: %w", err)
	}

	var items []ports.RecipeSummary
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("recipe cache decode: %w", err)
	}
	return items, true, nil
}

// Generation returns the invalidation counter, 0 before the first write.
func (c *RecipeCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, recipeGenKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("recipe cache generation: %w", err)
	}
	return gen, nil
}

// Set caches items unless Invalidate ran since generation was read.
func (c *RecipeCache) Set(ctx context.Context, generation int64, items []ports.RecipeSummary) (bool, error) {
	if items == nil {
		items = []ports.RecipeSummary{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return false, fmt.Errorf("recipe cache encode: %w", err)
	}

	res, err := setIfGeneration.Run(ctx, c.client,
		[]string{recipeGenKey, recipeListKey},
		strconv.FormatInt(generation, 10), raw, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("recipe cache set: %w", err)
	}
	return res == 1, nil
}

// Invalidate bumps the generation and drops the cached list in one transaction.
func (c *RecipeCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, recipeGenKey)
		pipe.Del(ctx, recipeListKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("recipe cache invalidate: %w", err)
	}
	return nil
}
