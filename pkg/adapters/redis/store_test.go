package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/fleetintake/pkg/adapters/redis"
	"github.com/aretw0/fleetintake/pkg/domain"
	"github.com/aretw0/fleetintake/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Contract(t *testing.T) {
	// Setup miniredis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	store := redis.NewFromClient(client)
	ports.RunRecordStoreContract(t, store)
}

func TestRedisStore_KeyAndRawFormat(t *testing.T) {
	mr := miniredis.RunT(t)

	store := redis.New(mr.Addr(), "", 0, redis.WithKey("test:records"))
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Ping(ctx))

	r := domain.NewFleetRecord()
	require.NoError(t, r.SetName("Ada"))
	require.NoError(t, r.SetCompany("Haulage Ltd"))
	require.NoError(t, store.Append(ctx, r))

	items, err := mr.List("test:records")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.JSONEq(t, `{"name":"Ada","company":"Haulage Ltd","total_trucks":0,"trucks":[]}`, items[0])
	assert.False(t, mr.Exists(redis.DefaultKey))
}

func TestRedisStore_CorruptElement(t *testing.T) {
	mr := miniredis.RunT(t)
	_, err := mr.Push(redis.DefaultKey, "{broken")
	require.NoError(t, err)

	store := redis.New(mr.Addr(), "", 0)
	defer store.Close()

	_, err = store.Records(context.Background())
	assert.ErrorContains(t, err, "record 0")
}
