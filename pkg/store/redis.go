package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/bagfill"
	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/config"
	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/mino"
)

// Redis stores results as JSON. Keys carry the catalogue fingerprint, so a
// changed catalogue never reads stale results.
type Redis struct {
	client *redis.Client
	cfg    config.RedisConfig
	log    logrus.FieldLogger
}

func NewRedis(ctx context.Context, cfg config.RedisConfig, log logrus.FieldLogger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.WithField("address", cfg.Address).Info("connected to Redis")

	return &Redis{client: client, cfg: cfg, log: log}, nil
}

func (r *Redis) key(width, height int) string {
	return r.cfg.Prefix + ":" + strconv.FormatUint(mino.Fingerprint(), 16) + ":" + sizeKey(width, height)
}

func (r *Redis) Get(ctx context.Context, width, height int) (*bagfill.ResultSet, bool, error) {
	data, err := r.client.Get(ctx, r.key(width, height)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", sizeKey(width, height), err)
	}

	var rs bagfill.ResultSet
	if err := json.Unmarshal(data, &rs); err != nil {
		r.log.WithError(err).WithField("key", r.key(width, height)).Warn("discarding corrupt cache entry")
		return nil, false, nil
	}
	return &rs, true, nil
}

func (r *Redis) Put(ctx context.Context, rs *bagfill.ResultSet) error {
	data, err := json.Marshal(rs)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key(rs.Width, rs.Height), data, r.cfg.TTL()).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", sizeKey(rs.Width, rs.Height), err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
