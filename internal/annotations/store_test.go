package annotations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/beego/beego/v2/client/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udistrital/agua_mid/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore("memory", `{"interval":60}`)
	require.NoError(t, err)
	return s
}

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	v, err := s.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Set(ctx, "p1", "con_agua"))
	require.NoError(t, s.Set(ctx, "p2", models.WaterNotGiven))

	v, err = s.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, models.WaterGiven, v)

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"p1": models.WaterGiven, "p2": models.WaterNotGiven}, all)

	require.NoError(t, s.Delete(ctx, "p1"))
	v, err = s.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestStore_LastWriterWins(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Set(ctx, "p1", models.WaterGiven))
	require.NoError(t, s.Set(ctx, "p1", models.WaterNotGiven))

	v, _ := s.Get(ctx, "p1")
	assert.Equal(t, models.WaterNotGiven, v)
}

func TestStore_RejectsUnknownValue(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.Set(context.Background(), "p1", "COMPLETED"))
	assert.Error(t, s.Set(context.Background(), " ", models.WaterGiven))
}

func TestStore_SingleStorageKey(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Set(ctx, "p1", models.WaterGiven))

	raw, err := s.backend.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"p1":"CON_AGUA"}`, raw.(string))
}

// failingCache simula un backend que no puede consultar la existencia de la clave.
type failingCache struct {
	cache.Cache
	puts int
}

func (f *failingCache) IsExist(context.Context, string) (bool, error) {
	return false, errors.New("backend no disponible")
}

func (f *failingCache) Put(context.Context, string, interface{}, time.Duration) error {
	f.puts++
	return nil
}

func TestStore_BackendErrorDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	backend := &failingCache{}
	s := NewStoreWithCache(backend)

	err := s.Set(ctx, "p1", models.WaterGiven)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend no disponible")
	assert.Zero(t, backend.puts)

	_, err = s.All(ctx)
	assert.Error(t, err)
	assert.Error(t, s.Delete(ctx, "p1"))
	assert.Zero(t, backend.puts)
}
