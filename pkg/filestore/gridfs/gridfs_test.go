package gridfs_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"easyrent/pkg/domain"
	"easyrent/pkg/filestore"
	"easyrent/pkg/filestore/gridfs"
	"easyrent/pkg/serrors"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupStore(t *testing.T) *gridfs.Store {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017"},
			WaitingFor:   wait.ForListeningPort("27017"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	store, err := gridfs.New(ctx, gridfs.Options{
		URI:      fmt.Sprintf("mongodb://%s:%d", host, port.Int()),
		Database: "easyrent_test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(ctx) })

	return store
}

func TestStore(t *testing.T) {
	t.Parallel()

	store := setupStore(t)
	ctx := context.Background()

	content := []byte("\x89PNG fake image")
	id, err := store.Put(ctx, "front.png", "image/png", bytes.NewReader(content))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	f, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "front.png", f.Name)
	require.Equal(t, "image/png", f.ContentType)
	require.EqualValues(t, len(content), f.Size)
	got, err := io.ReadAll(f.Content)
	require.NoError(t, err)
	require.NoError(t, f.Content.Close())
	require.Equal(t, content, got)

	data, _, err := filestore.ReadAll(ctx, store, id)
	require.NoError(t, err)
	require.Equal(t, content, data)

	require.NoError(t, store.Delete(ctx, id))
	_, err = store.Get(ctx, id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.ErrorIs(t, store.Delete(ctx, id), serrors.ErrNotFound)

	_, err = store.Get(ctx, domain.FileID("not-an-object-id"))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
