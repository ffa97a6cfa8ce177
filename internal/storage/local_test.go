package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	store, err := NewLocalStorage(filepath.Join(t.TempDir(), "objects"))
	require.NoError(t, err)
	return store
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "src.bin")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLocalUploadDownloadRoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	src := writeTempFile(t, "client database bytes")
	require.NoError(t, store.Upload(ctx, src, "db/cdclient.fdb"))

	exists, err := store.Exists(ctx, "db/cdclient.fdb")
	require.NoError(t, err)
	assert.True(t, exists)

	dest := filepath.Join(t.TempDir(), "nested", "cdclient.fdb")
	require.NoError(t, store.Download(ctx, "db/cdclient.fdb", dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "client database bytes", string(data))
}

func TestLocalDownloadMissingObject(t *testing.T) {
	store := newTestStorage(t)

	err := store.Download(context.Background(), "db/missing.fdb", filepath.Join(t.TempDir(), "out"))
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocalDeleteIsIdempotent(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	src := writeTempFile(t, "x")
	require.NoError(t, store.Upload(ctx, src, "db/cdclient.fdb"))
	require.NoError(t, store.Delete(ctx, "db/cdclient.fdb"))
	require.NoError(t, store.Delete(ctx, "db/cdclient.fdb"))

	exists, err := store.Exists(ctx, "db/cdclient.fdb")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalListObjects(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	src := writeTempFile(t, "x")
	require.NoError(t, store.Upload(ctx, src, "export/missions.json.sz"))
	require.NoError(t, store.Upload(ctx, src, "export/objects.json.sz"))
	require.NoError(t, store.Upload(ctx, src, "db/cdclient.fdb"))

	objects, err := store.ListObjects(ctx, "export")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join("export", "missions.json.sz"),
		filepath.Join("export", "objects.json.sz"),
	}, objects)

	empty, err := store.ListObjects(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLocalDownloadCancelledContext(t *testing.T) {
	store := newTestStorage(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Download(ctx, "db/cdclient.fdb", filepath.Join(t.TempDir(), "out"))
	assert.ErrorIs(t, err, context.Canceled)
}
