package store

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/bagfill"
	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/config"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	defer m.Close()

	_, ok, err := m.Get(ctx, 3, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	rs, err := bagfill.Generate(3, 2)
	require.NoError(t, err)
	require.NoError(t, m.Put(ctx, rs))

	cached, ok, err := m.Get(ctx, 3, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, rs.Equal(cached))

	_, ok, err = m.Get(ctx, 2, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisUnreachable(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRedis(ctx, config.RedisConfig{Address: "127.0.0.1:1", Prefix: "test"}, log)
	assert.Error(t, err)
}

func TestRedisKey(t *testing.T) {
	r := &Redis{cfg: config.RedisConfig{Prefix: "bagfill"}}
	assert.Regexp(t, `^bagfill:[0-9a-f]+:4x2$`, r.key(4, 2))
	assert.NotEqual(t, r.key(4, 2), r.key(2, 4))
}
