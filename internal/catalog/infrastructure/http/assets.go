package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// AssetClient downloads product images and persists them under a local
// directory. Files land under their final name only after a complete write,
// via a temp file and rename.
type AssetClient struct {
	log    *slog.Logger
	dir    string
	client *http.Client
}

func NewAssetClient(log *slog.Logger, dir string) *AssetClient {
	return &AssetClient{log: log, dir: dir, client: &http.Client{}}
}

// FetchAsset downloads url and saves it as name inside the asset directory.
func (c *AssetClient) FetchAsset(ctx context.Context, url, name string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build asset request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch asset %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch asset %s: unexpected status %d", url, resp.StatusCode)
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create asset dir: %w", err)
	}
	tmp, err := os.CreateTemp(c.dir, name+".tmp-")
	if err != nil {
		return fmt.Errorf("create asset temp file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write asset %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close asset %s: %w", name, err)
	}
	path := filepath.Join(c.dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename asset %s: %w", name, err)
	}
	c.log.Info("asset saved", "path", path)
	return nil
}
