package services

import (
	"fmt"

	"salon-site-server/catalog"
	"salon-site-server/data"
	"salon-site-server/models"
)

// SiteContent is the static material of the marketing pages
type SiteContent struct {
	Hero      models.Hero
	Plans     []models.SubscriptionPlan
	Reviews   []models.Review
	Locations []models.Location
}

// LoadSiteContent decodes the bundled site assets
func LoadSiteContent() (*SiteContent, error) {
	plans, err := data.SubscriptionPlans()
	if err != nil {
		return nil, err
	}
	reviews, err := data.Reviews()
	if err != nil {
		return nil, err
	}
	locations, err := data.Locations()
	if err != nil {
		return nil, err
	}

	return &SiteContent{
		Hero: models.Hero{
			Title:        "Where Luxury",
			Highlight:    "Meets Elegance",
			Subtitle:     "Experience premium grooming in our sophisticated unisex salon designed for discerning clients",
			CallToAction: "Reserve Your Experience",
			Phone:        "8293957099",
			Background:   "./content-uploads/72c64973-74b6-4dfb-8b5f-b0145483e0af.png",
		},
		Plans:     plans,
		Reviews:   reviews,
		Locations: locations,
	}, nil
}

// PlanPeriodView is a plan period with discounted prices worked out
type PlanPeriodView struct {
	models.PlanPeriod
	MaleFinalPrice   float64 `json:"male_final_price"`
	FemaleFinalPrice float64 `json:"female_final_price"`
	DiscountLabel    string  `json:"discount_label,omitempty"`
}

// PlanView is a subscription plan ready for display
type PlanView struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Popular     bool             `json:"popular"`
	BorderColor string           `json:"borderColor"`
	Periods     []PlanPeriodView `json:"plans"`
}

// PlanViews works out final prices and discount badges for every period
func PlanViews(plans []models.SubscriptionPlan) []PlanView {
	views := make([]PlanView, 0, len(plans))
	for _, plan := range plans {
		view := PlanView{
			ID:          plan.ID,
			Name:        plan.Name,
			Popular:     plan.Popular,
			BorderColor: plan.BorderColor,
			Periods:     make([]PlanPeriodView, 0, len(plan.Plans)),
		}
		for _, period := range plan.Plans {
			view.Periods = append(view.Periods, PlanPeriodView{
				PlanPeriod:       period,
				MaleFinalPrice:   period.Male.FinalPrice(),
				FemaleFinalPrice: period.Female.FinalPrice(),
				DiscountLabel:    discountLabel(period),
			})
		}
		views = append(views, view)
	}
	return views
}

func discountLabel(period models.PlanPeriod) string {
	male, female := period.Male.Discount, period.Female.Discount
	switch {
	case male > 0 && female > 0:
		return fmt.Sprintf("%d%% OFF (Men) | %d%% OFF (Women)", male, female)
	case male > 0:
		return fmt.Sprintf("%d%% OFF (Men)", male)
	case female > 0:
		return fmt.Sprintf("%d%% OFF (Women)", female)
	}
	return ""
}

// HomePage is the payload behind the landing page
type HomePage struct {
	Hero      models.Hero            `json:"hero"`
	Featured  []models.ServiceRecord `json:"featured_services"`
	Plans     []PlanView             `json:"subscription_plans"`
	Reviews   []models.Review        `json:"reviews"`
	Locations []models.Location      `json:"locations"`
}

// Home assembles the landing page from the static content and a catalog snapshot
func (s *SiteContent) Home(records []models.ServiceRecord) HomePage {
	return HomePage{
		Hero:      s.Hero,
		Featured:  catalog.Featured(records),
		Plans:     PlanViews(s.Plans),
		Reviews:   s.Reviews,
		Locations: s.Locations,
	}
}
