package models

import "math"

// GenderPlan is the men's or women's side of a membership period
type GenderPlan struct {
	Price    float64  `json:"price"`
	Discount int      `json:"discount"`
	Services []string `json:"services"`
}

// FinalPrice applies the percentage discount and rounds to the nearest unit
func (g GenderPlan) FinalPrice() float64 {
	if g.Discount <= 0 {
		return g.Price
	}
	return math.Round(g.Price * (1 - float64(g.Discount)/100))
}

// PlanPeriod is one billing period of a subscription plan
type PlanPeriod struct {
	Period string     `json:"period"`
	Label  string     `json:"label"`
	Male   GenderPlan `json:"male"`
	Female GenderPlan `json:"female"`
}

// SubscriptionPlan is a membership tier shown on the home page
type SubscriptionPlan struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Popular     bool         `json:"popular"`
	BorderColor string       `json:"borderColor"`
	Plans       []PlanPeriod `json:"plans"`
}

// Review is a customer testimonial
type Review struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// Location is a salon branch
type Location struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Hours   string `json:"hours"`
	MapURL  string `json:"mapUrl"`
}

// Hero is the static copy at the top of the home page
type Hero struct {
	Title        string `json:"title"`
	Highlight    string `json:"highlight"`
	Subtitle     string `json:"subtitle"`
	CallToAction string `json:"call_to_action"`
	Phone        string `json:"phone"`
	Background   string `json:"background_image"`
}
