package stats

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discochess/castle-discord-service/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := New(&config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndCount(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.RecordLookup("maia"))
	require.NoError(t, store.RecordLookup("maia"))
	require.NoError(t, store.RecordLookup("magnus"))

	total, err := store.TotalLookups()
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	count, err := store.LookupCount("maia")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = store.LookupCount("never-seen")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestTopLookups(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.RecordLookup("maia"))
	}
	require.NoError(t, store.RecordLookup("magnus"))

	top, err := store.TopLookups(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"maia", "magnus"}, top)
}

func TestEmptyTotal(t *testing.T) {
	store := newTestStore(t)

	total, err := store.TotalLookups()
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestNilStoreIsNoOp(t *testing.T) {
	var store *Store

	assert.NoError(t, store.RecordLookup("maia"))
	assert.NoError(t, store.Ping())
	assert.NoError(t, store.Close())

	total, err := store.TotalLookups()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestNewUnconfigured(t *testing.T) {
	store, err := New(&config.RedisConfig{})
	assert.NoError(t, err)
	assert.Nil(t, store)
}
