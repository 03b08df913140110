package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/crm/internal/model"
	"github.com/vmihailenco/msgpack/v5"
)

const cachedComplaintTimeToLive = 10 * time.Minute

// ComplaintCache keeps complaints looked up by customers via reference
type ComplaintCache interface {
	FindByReference(context.Context, string) (*model.Complaint, error)
	EvictByReference(context.Context, string) error
	Cache(context.Context, *model.Complaint) error
}

type redisComplaintCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisComplaintCache builds ComplaintCache backed by redis, complaints are encoded with msgpack
func NewRedisComplaintCache(client *redis.Client, ttl time.Duration) ComplaintCache {
	if ttl <= 0 {
		ttl = cachedComplaintTimeToLive
	}
	return &redisComplaintCache{client: client, ttl: ttl}
}

func (r *redisComplaintCache) FindByReference(ctx context.Context, ref string) (*model.Complaint, error) {
	res, err := r.client.Get(ctx, r.key(ref)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var c model.Complaint
	if err := msgpack.Unmarshal(res, &c); err != nil {
		return nil, fmt.Errorf("failed to decode cached complaint %s - %w", ref, err)
	}
	return &c, nil
}

func (r *redisComplaintCache) EvictByReference(ctx context.Context, ref string) error {
	return r.client.Del(ctx, r.key(ref)).Err()
}

func (r *redisComplaintCache) Cache(ctx context.Context, c *model.Complaint) error {
	encoded, err := msgpack.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode complaint %s - %w", c.Reference, err)
	}
	return r.client.Set(ctx, r.key(c.Reference), encoded, r.ttl).Err()
}

func (r *redisComplaintCache) key(ref string) string {
	return fmt.Sprintf("complaint:%s", ref)
}

type noopComplaintCache struct{}

// NewNoopComplaintCache builds ComplaintCache which never stores anything, used when redis is not configured
func NewNoopComplaintCache() ComplaintCache {
	return noopComplaintCache{}
}

func (noopComplaintCache) FindByReference(context.Context, string) (*model.Complaint, error) {
	return nil, nil
}

func (noopComplaintCache) EvictByReference(context.Context, string) error {
	return nil
}

func (noopComplaintCache) Cache(context.Context, *model.Complaint) error {
	return nil
}
