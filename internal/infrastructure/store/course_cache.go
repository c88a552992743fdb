package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	usecasecontract "coursehub/internal/usecase/contract"
)

const publishedCoursesKey = "courses:published"

// CourseCacheStore caches the published-course listing in Redis. Corrupt
// payloads are treated as misses so a schema change never breaks reads.
type CourseCacheStore struct {
	rdb     *redis.Client
	listTTL time.Duration
}

func NewCourseCacheStore(rdb *redis.Client) *CourseCacheStore {
	return &CourseCacheStore{
		rdb:     rdb,
		listTTL: 30 * time.Minute,
	}
}

var _ usecasecontract.ICourseCache = (*CourseCacheStore)(nil)

func (c *CourseCacheStore) GetPublishedCourses(ctx context.Context) (*usecasecontract.CachedCourseList, bool, error) {
	b, err := c.rdb.Get(ctx, publishedCoursesKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var list usecasecontract.CachedCourseList
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, false, nil
	}
	return &list, true, nil
}

func (c *CourseCacheStore) SetPublishedCourses(ctx context.Context, list *usecasecontract.CachedCourseList) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, publishedCoursesKey, data, c.listTTL).Err()
}

func (c *CourseCacheStore) InvalidatePublishedCourses(ctx context.Context) error {
	return c.rdb.Del(ctx, publishedCoursesKey).Err()
}
