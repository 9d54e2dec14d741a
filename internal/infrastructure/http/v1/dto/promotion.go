package dto

import (
	"github.com/shopspring/decimal"

	"salesdesk/internal/domain/promotion"
)

// CreatePromotionRequest is the request body for registering a promotion.
// Dates use DateLayout and are inclusive.
type CreatePromotionRequest struct {
	Kind        promotion.Kind  `json:"kind" binding:"required"`
	Magnitude   decimal.Decimal `json:"magnitude"`
	ProductCode string          `json:"productCode" binding:"required"`
	StartDate   string          `json:"startDate" binding:"required"`
	EndDate     string          `json:"endDate" binding:"required"`
	Description string          `json:"description"`
	Condition   string          `json:"condition"`
	Active      *bool           `json:"active"`
}

// ToEntity converts DTO to domain entity.
func (r *CreatePromotionRequest) ToEntity() (*promotion.Promotion, error) {
	start, err := ParseDate("startDate", r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate("endDate", r.EndDate)
	if err != nil {
		return nil, err
	}

	p := promotion.New(r.Kind, r.Magnitude, r.ProductCode, start, end)
	p.Description = r.Description
	p.Condition = r.Condition
	if r.Active != nil {
		p.Active = *r.Active
	}
	return p, nil
}

// ResolvePromotionQuery selects the product and date to resolve for.
type ResolvePromotionQuery struct {
	Product string `form:"product" binding:"required"`
	Date    string `form:"date"`
}

// PromotionResponse is the API representation of a promotion.
type PromotionResponse struct {
	ID          string          `json:"id"`
	Kind        promotion.Kind  `json:"kind"`
	Magnitude   decimal.Decimal `json:"magnitude"`
	ProductCode string          `json:"productCode"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Description string          `json:"description,omitempty"`
	Condition   string          `json:"condition,omitempty"`
	Active      bool            `json:"active"`
}

// FromPromotion creates PromotionResponse from domain entity.
func FromPromotion(p *promotion.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:          p.ID.String(),
		Kind:        p.Kind,
		Magnitude:   p.Magnitude,
		ProductCode: p.ProductCode,
		StartDate:   p.StartDate.Format(DateLayout),
		EndDate:     p.EndDate.Format(DateLayout),
		Description: p.Description,
		Condition:   p.Condition,
		Active:      p.Active,
	}
}

// ResolvedPromotionResponse reports the promotion in force, if any.
type ResolvedPromotionResponse struct {
	ProductCode string             `json:"productCode"`
	Date        string             `json:"date"`
	Promotion   *PromotionResponse `json:"promotion"`
}
