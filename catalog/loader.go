package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"salon-site-server/logx"
	"salon-site-server/models"
)

// ErrCatalogUnavailable wraps every failure to obtain a catalog
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// Loader produces a whole catalog from one source
type Loader interface {
	Load(ctx context.Context) ([]models.ServiceRecord, error)
	Name() string
}

// Decode parses a JSON array of service records
func Decode(raw []byte) ([]models.ServiceRecord, error) {
	var records []models.ServiceRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode catalog: %v", ErrCatalogUnavailable, err)
	}
	if records == nil {
		records = []models.ServiceRecord{}
	}
	return records, nil
}

// BundledLoader serves a catalog asset compiled into the binary
type BundledLoader struct {
	raw []byte
}

// NewBundledLoader creates a loader over a raw JSON asset
func NewBundledLoader(raw []byte) *BundledLoader {
	return &BundledLoader{raw: raw}
}

func (l *BundledLoader) Name() string {
	return "bundled"
}

func (l *BundledLoader) Load(ctx context.Context) ([]models.ServiceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Decode(l.raw)
}

// LoadOrEmpty loads the catalog and swallows failures, yielding an empty
// catalog so that filtering naturally produces no results.
func LoadOrEmpty(ctx context.Context, loader Loader) []models.ServiceRecord {
	records, err := loader.Load(ctx)
	if err != nil {
		logx.Warn().Err(err).Str("source", loader.Name()).Msg("⚠️ Catalog load failed, serving empty catalog")
		return []models.ServiceRecord{}
	}
	return records
}
