package overlay

import (
	"context"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps one Redis set per (session, kind). Every write refreshes the
// set's TTL, so abandoned sessions expire on their own.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) key(session string, kind Kind) string {
	return "overlay:" + session + ":" + string(kind)
}

func (s *RedisStore) Add(ctx context.Context, session string, kind Kind, id string) error {
	if !kind.Valid() {
		return ErrUnknownKind
	}
	key := s.key(session, kind)
	pipe := s.rdb.TxPipeline()
	pipe.SAdd(ctx, key, id)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Remove(ctx context.Context, session string, kind Kind, id string) error {
	if !kind.Valid() {
		return ErrUnknownKind
	}
	return s.rdb.SRem(ctx, s.key(session, kind), id).Err()
}

func (s *RedisStore) Members(ctx context.Context, session string, kind Kind) ([]string, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}
	ids, err := s.rdb.SMembers(ctx, s.key(session, kind)).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *RedisStore) Snapshot(ctx context.Context, session string) (Snapshot, error) {
	pipe := s.rdb.Pipeline()
	cmds := make(map[Kind]*redis.StringSliceCmd, len(Kinds))
	for _, k := range Kinds {
		cmds[k] = pipe.SMembers(ctx, s.key(session, k))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	out := make(Snapshot, len(Kinds))
	for k, cmd := range cmds {
		ids := cmd.Val()
		if ids == nil {
			ids = []string{}
		}
		sort.Strings(ids)
		out[k] = ids
	}
	return out, nil
}

func (s *RedisStore) Clear(ctx context.Context, session string) error {
	keys := make([]string, 0, len(Kinds))
	for _, k := range Kinds {
		keys = append(keys, s.key(session, k))
	}
	return s.rdb.Del(ctx, keys...).Err()
}
