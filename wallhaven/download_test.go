package wallhaven

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smallest valid PNG: signature, IHDR, empty IDAT, IEND.
var pngBytes = []byte{
	0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R',
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x00, 0x00, 0x00, 0x00, 0x3a, 0x7e, 0x9b,
	0x55, 0x00, 0x00, 0x00, 0x0a, 'I', 'D', 'A', 'T',
	0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00, 0x05,
	0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00,
	0x00, 0x00, 'I', 'E', 'N', 'D', 0xae, 0x42, 0x60, 0x82,
}

func imageServer(t *testing.T, status int, body []byte) (*Wallhaven, string) {
	t.Helper()
	t.Setenv(EnvAPIKey, "")
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(ts.Close)
	return New("", testLogger()), ts.URL
}

func TestSave(t *testing.T) {
	client, imageURL := imageServer(t, http.StatusOK, pngBytes)
	wp := &Wallpaper{
		ID:       "123456",
		FileType: "image/png",
		Path:     imageURL + "/full/12/wallhaven-123456.png",
		client:   client,
	}

	dir := t.TempDir()
	path, err := wp.Save(t.Context(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "123456.png"), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, written)
}

func TestSaveCreatesNestedDir(t *testing.T) {
	client, imageURL := imageServer(t, http.StatusOK, pngBytes)
	wp := &Wallpaper{ID: "123456", FileType: "png", Path: imageURL + "/x.png", client: client}

	dir := filepath.Join(t.TempDir(), "sub", "dir")
	path, err := wp.Save(t.Context(), dir)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestSaveSniffsExtension(t *testing.T) {
	client, imageURL := imageServer(t, http.StatusOK, pngBytes)
	wp := &Wallpaper{ID: "123456", FileType: "", Path: imageURL + "/x", client: client}

	path, err := wp.Save(t.Context(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "123456.png", filepath.Base(path))
}

func TestSaveServerError(t *testing.T) {
	client, imageURL := imageServer(t, http.StatusInternalServerError, nil)
	wp := &Wallpaper{ID: "123456", FileType: "png", Path: imageURL + "/x.png", client: client}

	_, err := wp.Save(t.Context(), t.TempDir())

	var download *DownloadError
	require.ErrorAs(t, err, &download)
	assert.Equal(t, "123456", download.ID)
	assert.Equal(t, http.StatusInternalServerError, download.Status)
}

func TestSaveDetachedWallpaper(t *testing.T) {
	wp := &Wallpaper{ID: "123456", FileType: "png"}

	_, err := wp.Save(t.Context(), t.TempDir())

	var download *DownloadError
	assert.ErrorAs(t, err, &download)
}
