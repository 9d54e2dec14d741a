package dto

import (
	"github.com/shopspring/decimal"

	"salesdesk/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for registering a product.
// Exactly one attribute payload matching Category is expected.
type CreateProductRequest struct {
	Code      string           `json:"code" binding:"required"`
	Name      string           `json:"name" binding:"required"`
	Category  product.Category `json:"category" binding:"required"`
	UnitPrice decimal.Decimal  `json:"unitPrice"`

	OfficeSupply *product.OfficeSupplyAttrs `json:"officeSupply"`
	Furniture    *product.FurnitureAttrs    `json:"furniture"`
	Technology   *product.TechnologyAttrs   `json:"technology"`
}

// ToEntity converts DTO to domain entity. Validation is left to the service.
func (r *CreateProductRequest) ToEntity() *product.Product {
	var p *product.Product
	switch r.Category {
	case product.CategoryOfficeSupply:
		p = product.NewOfficeSupply(r.Code, r.Name, r.UnitPrice, product.OfficeSupplyAttrs{})
	case product.CategoryFurniture:
		p = product.NewFurniture(r.Code, r.Name, r.UnitPrice, product.FurnitureAttrs{})
	case product.CategoryTechnology:
		p = product.NewTechnology(r.Code, r.Name, r.UnitPrice, product.TechnologyAttrs{})
	default:
		p = product.NewOfficeSupply(r.Code, r.Name, r.UnitPrice, product.OfficeSupplyAttrs{})
		p.Category = r.Category
	}
	p.OfficeSupply = r.OfficeSupply
	p.Furniture = r.Furniture
	p.Technology = r.Technology
	return p
}

// ChangePriceRequest is the request body for repricing a product.
type ChangePriceRequest struct {
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// --- Response DTOs ---

// ProductResponse is the API representation of a product.
type ProductResponse struct {
	ID          string           `json:"id"`
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    product.Category `json:"category"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	Attributes  any              `json:"attributes,omitempty"`
	Version     int              `json:"version"`
}

// FromProduct creates ProductResponse from domain entity.
func FromProduct(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Describe(),
		Category:    p.Category,
		UnitPrice:   p.UnitPrice,
		Attributes:  p.Attributes(),
		Version:     p.Version,
	}
}
