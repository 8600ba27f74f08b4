package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"salon-site-server/models"
)

const maxRemoteCatalogBytes = 5 << 20

// RemoteLoader fetches the catalog with a single unauthenticated GET
type RemoteLoader struct {
	URL    string
	Client *http.Client
}

// NewRemoteLoader creates a loader for url with the given request timeout
func NewRemoteLoader(url string, timeout time.Duration) *RemoteLoader {
	return &RemoteLoader{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

func (l *RemoteLoader) Name() string {
	return "remote"
}

func (l *RemoteLoader) Load(ctx context.Context) ([]models.ServiceRecord, error) {
	raw, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

func (l *RemoteLoader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", ErrCatalogUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: catalog endpoint returned status %d", ErrCatalogUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteCatalogBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrCatalogUnavailable, err)
	}
	return raw, nil
}
