package catalog

import (
	"math"

	"salon-site-server/models"
)

// Filter returns the records that satisfy every active clause of state.
//
// The result keeps catalog order and is a new slice; catalog is only read.
func Filter(catalog []models.ServiceRecord, state FilterState) []models.ServiceRecord {
	result := make([]models.ServiceRecord, 0, len(catalog))
	for _, record := range catalog {
		if state.Matches(record) {
			result = append(result, record)
		}
	}
	return result
}

// Matches reports whether a single record passes the category, price,
// discount and gender clauses.
func (s FilterState) Matches(record models.ServiceRecord) bool {
	return s.matchesCategory(record) &&
		s.matchesPrice(record) &&
		s.matchesDiscount(record) &&
		s.matchesGender(record)
}

func (s FilterState) matchesCategory(record models.ServiceRecord) bool {
	return s.Category == All || s.Category == string(record.Category)
}

func (s FilterState) matchesPrice(record models.ServiceRecord) bool {
	return record.Price >= s.PriceLower && record.Price <= s.PriceUpper
}

func (s FilterState) matchesDiscount(record models.ServiceRecord) bool {
	switch s.DiscountMode {
	case DiscountAll:
		return true
	case DiscountWith:
		return record.Discount > 0
	case DiscountWithout:
		return record.Discount == 0
	}
	return false
}

func (s FilterState) matchesGender(record models.ServiceRecord) bool {
	return s.Gender == All || s.Gender == string(record.Gender)
}

// Featured returns the records flagged for the home page carousel
func Featured(catalog []models.ServiceRecord) []models.ServiceRecord {
	result := make([]models.ServiceRecord, 0)
	for _, record := range catalog {
		if record.Featured {
			result = append(result, record)
		}
	}
	return result
}

// PriceRange returns the global minimum and maximum price. An empty catalog yields 0, 0.
func PriceRange(catalog []models.ServiceRecord) (float64, float64) {
	if len(catalog) == 0 {
		return 0, 0
	}
	lower, upper := math.Inf(1), math.Inf(-1)
	for _, record := range catalog {
		lower = math.Min(lower, record.Price)
		upper = math.Max(upper, record.Price)
	}
	return lower, upper
}

// Categories returns the distinct categories present in the catalog, in
// the canonical display order.
func Categories(catalog []models.ServiceRecord) []models.ServiceCategory {
	present := make(map[models.ServiceCategory]bool)
	for _, record := range catalog {
		present[record.Category] = true
	}

	result := make([]models.ServiceCategory, 0, len(present))
	for _, category := range models.AllCategories {
		if present[category] {
			result = append(result, category)
		}
	}
	return result
}

// FindByID looks a record up by its catalog id
func FindByID(catalog []models.ServiceRecord, id int) (models.ServiceRecord, bool) {
	for _, record := range catalog {
		if record.ID == id {
			return record, true
		}
	}
	return models.ServiceRecord{}, false
}
