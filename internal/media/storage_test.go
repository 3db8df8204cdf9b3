package media

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowedImageType(t *testing.T) {
	require.True(t, AllowedImageType("image/jpeg"))
	require.True(t, AllowedImageType("IMAGE/PNG"))
	require.True(t, AllowedImageType("image/avif"))
	require.False(t, AllowedImageType("image/gif"))
	require.False(t, AllowedImageType("application/pdf"))
	require.False(t, AllowedImageType(""))
}

func TestNewStoredName(t *testing.T) {
	t.Run("keeps a sane extension", func(t *testing.T) {
		name := NewStoredName("holiday.JPG")
		require.True(t, strings.HasSuffix(name, ".JPG"))
	})

	t.Run("drops weird extensions", func(t *testing.T) {
		require.False(t, strings.Contains(NewStoredName("x.j%pg"), "%"))
		require.False(t, strings.Contains(NewStoredName("noext"), "."))
	})

	t.Run("names are unique", func(t *testing.T) {
		require.NotEqual(t, NewStoredName("a.png"), NewStoredName("a.png"))
	})
}

func TestPublicURL(t *testing.T) {
	require.Equal(t, "/uploads/a.png", PublicURL("", "a.png"))
	require.Equal(t, "https://api.example.com/uploads/a.png", PublicURL("https://api.example.com", "a.png"))
}

func TestContentTypeFor(t *testing.T) {
	require.Equal(t, "image/jpeg", ContentTypeFor("a.JPG"))
	require.Equal(t, "image/png", ContentTypeFor("a.png"))
	require.Equal(t, "application/octet-stream", ContentTypeFor("a.bin"))
}

func TestLocalStorageRoundTrip(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, storage.Save(ctx, "photo.png", "image/png", strings.NewReader("pixels")))

	f, size, err := storage.Open(ctx, "photo.png")
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, int64(6), size)

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, "pixels", string(data))
}

func TestLocalStorageDelete(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, storage.Save(ctx, "photo.png", "image/png", strings.NewReader("pixels")))
	require.NoError(t, storage.Delete(ctx, "photo.png"))

	_, _, err = storage.Open(ctx, "photo.png")
	require.Error(t, err)
}

func TestLocalStoragePathEscape(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir)
	require.NoError(t, err)

	// traversal names collapse to their base name inside the upload dir
	require.NoError(t, storage.Save(context.Background(), "../../evil.png", "image/png", strings.NewReader("x")))

	_, _, err = storage.Open(context.Background(), "evil.png")
	require.NoError(t, err)
}
