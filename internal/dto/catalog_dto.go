// FILE: internal/dto/catalog_dto.go
package dto

import (
	"github.com/google/uuid"
)

type CategoryResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
}

type ServiceSummaryResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	SiteURL     string    `json:"site_url,omitempty"`
	Category    string    `json:"category,omitempty"`
}

type PlanResponse struct {
	Id                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Price               float64   `json:"price"`
	Duration            string    `json:"duration"`
	DurationDays        int       `json:"duration_days"`
	Features            []string  `json:"features,omitempty"`
	FirstPurchasePoints int       `json:"first_purchase_points"`
	RenewalPoints       int       `json:"renewal_points"`
}

// PlanAffordability annotates a plan with the viewer's points position.
// Only present for authenticated catalog requests.
type PlanAffordability struct {
	PointsPrice      int  `json:"points_price"`
	CanPayWithPoints bool `json:"can_pay_with_points"`
	PointsMissing    int  `json:"points_missing"`
}

type AnnotatedPlanResponse struct {
	PlanResponse
	Affordability *PlanAffordability `json:"affordability,omitempty"`
}

type ServiceDetailResponse struct {
	ServiceSummaryResponse
	Plans []AnnotatedPlanResponse `json:"plans"`
}

type LandingResponse struct {
	FeaturedServices []ServiceSummaryResponse `json:"featured_services"`
	Categories       []CategoryResponse       `json:"categories"`
}

type CatalogResponse struct {
	Services   []ServiceSummaryResponse `json:"services"`
	Categories []CategoryResponse       `json:"categories"`
	Category   string                   `json:"category,omitempty"`
}
