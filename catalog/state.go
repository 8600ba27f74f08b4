package catalog

import (
	"fmt"
	"math"

	"salon-site-server/models"
)

// All disables the category or gender clause
const All = "all"

// DiscountMode selects how the discount clause treats a record
type DiscountMode string

const (
	DiscountAll     DiscountMode = "all"
	DiscountWith    DiscountMode = "with-discount"
	DiscountWithout DiscountMode = "no-discount"
)

// ParseDiscountMode maps a query value to a DiscountMode; empty means all
func ParseDiscountMode(value string) (DiscountMode, error) {
	switch DiscountMode(value) {
	case "", DiscountAll:
		return DiscountAll, nil
	case DiscountWith, DiscountWithout:
		return DiscountMode(value), nil
	}
	return "", fmt.Errorf("unknown discount mode %q", value)
}

// FilterState holds the active filter values of one catalog view.
//
// PriceLower <= PriceUpper always holds when the state is only changed
// through SetLower, SetUpper and Reset.
type FilterState struct {
	Category     string       `json:"category"`
	PriceLower   float64      `json:"price_lower"`
	PriceUpper   float64      `json:"price_upper"`
	DiscountMode DiscountMode `json:"discount_mode"`
	Gender       string       `json:"gender"`

	minPrice float64
	maxPrice float64
}

// NewFilterState returns a state that matches the whole catalog
func NewFilterState(catalog []models.ServiceRecord) FilterState {
	minPrice, maxPrice := PriceRange(catalog)
	state := FilterState{minPrice: minPrice, maxPrice: maxPrice}
	state.Reset()
	return state
}

// Reset clears every filter back to the catalog-wide bounds
func (s *FilterState) Reset() {
	s.Category = All
	s.DiscountMode = DiscountAll
	s.Gender = All
	s.PriceLower = s.minPrice
	s.PriceUpper = s.maxPrice
}

// Bounds returns the slider range the price handles move within
func (s FilterState) Bounds() (float64, float64) {
	return s.minPrice, s.maxPrice
}

// SetLower moves the lower price handle. It never passes the upper handle.
func (s *FilterState) SetLower(value float64) {
	s.PriceLower = math.Min(s.clampToBounds(value), s.PriceUpper)
}

// SetUpper moves the upper price handle. It never passes the lower handle.
func (s *FilterState) SetUpper(value float64) {
	s.PriceUpper = math.Max(s.clampToBounds(value), s.PriceLower)
}

func (s FilterState) clampToBounds(value float64) float64 {
	if math.IsNaN(value) {
		return s.minPrice
	}
	return math.Max(s.minPrice, math.Min(value, s.maxPrice))
}

// SetCategory selects a category, or All
func (s *FilterState) SetCategory(category string) {
	if category == "" {
		category = All
	}
	s.Category = category
}

// SetGender selects a gender, or All
func (s *FilterState) SetGender(gender string) {
	if gender == "" {
		gender = All
	}
	s.Gender = gender
}

// SetDiscountMode selects how discounted records are treated
func (s *FilterState) SetDiscountMode(mode DiscountMode) {
	s.DiscountMode = mode
}
