package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"tripzy/internal/domain"
	"tripzy/internal/domain/models"
)

const draftKeyPrefix = "tripzy:draft:"

// RedisDraftRepo stores drafts as JSON values with a TTL so abandoned forms expire.
type RedisDraftRepo struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDraftRepo(client *redis.Client, ttl time.Duration) RedisDraftRepo {
	return RedisDraftRepo{Client: client, TTL: ttl}
}

func redisDraftKey(key string) string {
	return draftKeyPrefix + key
}

func (r RedisDraftRepo) Get(ctx context.Context, key string) (models.BookingDraft, error) {
	var out models.BookingDraft
	raw, err := r.Client.Get(ctx, redisDraftKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return out, domain.NotFoundError{Resource: "draft", Err: err}
	}
	if err != nil {
		return out, domain.InternalError{Msg: "draft store unavailable", Err: err}
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, domain.InternalError{Msg: "corrupt draft", Err: err}
	}
	return out, nil
}

func (r RedisDraftRepo) Save(ctx context.Context, key string, draft models.BookingDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return domain.InternalError{Msg: "encode draft", Err: err}
	}
	if err := r.Client.Set(ctx, redisDraftKey(key), raw, r.TTL).Err(); err != nil {
		return domain.InternalError{Msg: "draft store unavailable", Err: err}
	}
	return nil
}

func (r RedisDraftRepo) Delete(ctx context.Context, key string) error {
	if err := r.Client.Del(ctx, redisDraftKey(key)).Err(); err != nil {
		return domain.InternalError{Msg: "draft store unavailable", Err: err}
	}
	return nil
}
