package data

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"salon-site-server/models"
)

var (
	//go:embed allServices.json
	allServicesJSON []byte

	//go:embed reviews.json
	reviewsJSON []byte

	//go:embed locations.json
	locationsJSON []byte

	//go:embed subscriptionPlans.json
	subscriptionPlansJSON []byte
)

// ServicesJSON returns the raw bundled catalog asset
func ServicesJSON() []byte {
	return allServicesJSON
}

// Reviews decodes the bundled testimonials
func Reviews() ([]models.Review, error) {
	var reviews []models.Review
	if err := json.Unmarshal(reviewsJSON, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// Locations decodes the bundled branch list
func Locations() ([]models.Location, error) {
	var locations []models.Location
	if err := json.Unmarshal(locationsJSON, &locations); err != nil {
		return nil, fmt.Errorf("failed to decode locations: %w", err)
	}
	return locations, nil
}

// SubscriptionPlans decodes the bundled membership tiers
func SubscriptionPlans() ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	if err := json.Unmarshal(subscriptionPlansJSON, &plans); err != nil {
		return nil, fmt.Errorf("failed to decode subscription plans: %w", err)
	}
	return plans, nil
}
