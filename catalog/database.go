package catalog

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"salon-site-server/models"
)

// DatabaseLoader reads the catalog table
type DatabaseLoader struct {
	DB *gorm.DB
}

func (l *DatabaseLoader) Name() string {
	return "database"
}

func (l *DatabaseLoader) Load(ctx context.Context) ([]models.ServiceRecord, error) {
	var records []models.ServiceRecord
	if err := l.DB.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to query catalog: %v", ErrCatalogUnavailable, err)
	}
	return records, nil
}
