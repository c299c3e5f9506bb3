package wallhaven

import (
	"context"
	"os"
	"path/filepath"

	"github.com/liamg/magic"
	"github.com/pkg/errors"
)

// Save streams the full image to <dir>/<id>.<ext>, creating dir if needed,
// and returns the written path. The extension comes from the wallpaper's
// file type; when that is unrecognized the downloaded bytes are sniffed
// instead.
func (wp *Wallpaper) Save(ctx context.Context, dir string) (string, error) {
	if wp.client == nil {
		return "", &DownloadError{ID: wp.ID, Err: errors.New("wallpaper is not attached to a client")}
	}

	data, err := wp.client.downloadFile(ctx, wp)
	if err != nil {
		return "", err
	}

	ext := wp.Extension()
	if ext == "" {
		if t, serr := magic.Lookup(data); serr == nil {
			ext = "." + t.Extension
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &DownloadError{ID: wp.ID, Err: err}
	}
	path := filepath.Join(dir, wp.ID+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &DownloadError{ID: wp.ID, Err: err}
	}
	return path, nil
}

// downloadFile fetches a wallpaper's image bytes. The image hosts live
// outside the API root, so wp.Path is an absolute URL.
func (w *Wallhaven) downloadFile(ctx context.Context, wp *Wallpaper) ([]byte, error) {
	resp := w.httpClient.Get(wp.Path).Do(ctx)
	if resp.Err != nil {
		return nil, &DownloadError{ID: wp.ID, Err: resp.Err}
	}
	if resp.StatusCode/100 != 2 {
		return nil, &DownloadError{ID: wp.ID, Status: resp.StatusCode}
	}
	return resp.Bytes(), nil
}
