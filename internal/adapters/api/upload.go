package api

import (
	"context"
	"net/http"
	"net/url"
	"os"

	"go.trai.ch/zerr"
)

// UploadArchive stores the archive at archivePath under key and returns its URL.
func (c *Client) UploadArchive(ctx context.Context, key, archivePath string) (string, error) {
	f, err := os.Open(archivePath) //nolint:gosec // path is produced by the archive adapter
	if err != nil {
		return "", zerr.Wrap(err, "failed to open archive")
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", zerr.Wrap(err, "failed to stat archive")
	}

	req, err := c.newRequest(ctx, http.MethodPut, "/uploads/"+url.PathEscape(key), f)
	if err != nil {
		return "", err
	}
	req.ContentLength = info.Size()
	req.Header.Set("Content-Type", "application/gzip")

	var resp uploadResponse
	if err := c.send(req, &resp); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to upload archive"), "key", key)
	}
	if resp.URL == "" {
		return "", zerr.With(zerr.New("build service returned no archive url"), "key", key)
	}
	return resp.URL, nil
}
