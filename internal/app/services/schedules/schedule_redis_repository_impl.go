package schedules

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/Data-Name-ID/mospoly-rasp/internal/app/models"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/constvars"
	"github.com/Data-Name-ID/mospoly-rasp/internal/pkg/exceptions"
)

type scheduleRedisRepository struct {
	client *redis.Client
}

func NewScheduleRedisRepository(client *redis.Client) ScheduleCacheRepository {
	return &scheduleRedisRepository{client: client}
}

func cacheKey(group string) string {
	return constvars.ScheduleCacheKeyPrefix + group
}

func (r *scheduleRedisRepository) GetEntry(ctx context.Context, group string) (*models.ScheduleCacheEntry, error) {
	key := cacheKey(group)
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrRedisGet(err, key)
	}

	var entry models.ScheduleCacheEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &entry, nil
}

// SetEntry overwrites the group's entry. Entries carry no TTL: staleness
// is signaled only at fetch time, never inferred from entry age.
func (r *scheduleRedisRepository) SetEntry(ctx context.Context, group string, entry *models.ScheduleCacheEntry) error {
	jsonValue, err := json.Marshal(entry)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := r.client.Set(ctx, cacheKey(group), jsonValue, 0).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}
