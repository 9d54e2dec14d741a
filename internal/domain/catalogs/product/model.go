// Package product provides the Product catalog: the sellable items quotations are built from.
package product

import (
	"context"
	"fmt"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/entity"
	"salesdesk/internal/core/types"
)

// Category is the closed set of product kinds. Each kind carries its own attribute payload.
type Category string

const (
	CategoryOfficeSupply Category = "office_supply"
	CategoryFurniture    Category = "furniture"
	CategoryTechnology   Category = "technology"
)

// OfficeSupplyAttrs are attributes of office-supply items.
type OfficeSupplyAttrs struct {
	Brand    string `json:"brand,omitempty"`
	PackSize int    `json:"packSize"`
	Color    string `json:"color,omitempty"`
}

// FurnitureAttrs are attributes of furniture items. Dimensions in centimetres.
type FurnitureAttrs struct {
	Material         string `json:"material"`
	WidthCM          int    `json:"widthCm"`
	DepthCM          int    `json:"depthCm"`
	HeightCM         int    `json:"heightCm"`
	AssemblyRequired bool   `json:"assemblyRequired"`
}

// TechnologyAttrs are attributes of technology items.
type TechnologyAttrs struct {
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	WarrantyMonths int    `json:"warrantyMonths"`
}

// Product is a catalog item. Exactly one attribute payload is set, the one matching Category.
type Product struct {
	entity.Catalog

	Category  Category    `json:"category"`
	UnitPrice types.Money `json:"unitPrice"`

	OfficeSupply *OfficeSupplyAttrs `json:"officeSupply,omitempty"`
	Furniture    *FurnitureAttrs    `json:"furniture,omitempty"`
	Technology   *TechnologyAttrs   `json:"technology,omitempty"`
}

// NewOfficeSupply creates an office-supply product.
func NewOfficeSupply(code, name string, price types.Money, attrs OfficeSupplyAttrs) *Product {
	return &Product{
		Catalog:      entity.NewCatalog(code, name),
		Category:     CategoryOfficeSupply,
		UnitPrice:    price,
		OfficeSupply: &attrs,
	}
}

// NewFurniture creates a furniture product.
func NewFurniture(code, name string, price types.Money, attrs FurnitureAttrs) *Product {
	return &Product{
		Catalog:   entity.NewCatalog(code, name),
		Category:  CategoryFurniture,
		UnitPrice: price,
		Furniture: &attrs,
	}
}

// NewTechnology creates a technology product.
func NewTechnology(code, name string, price types.Money, attrs TechnologyAttrs) *Product {
	return &Product{
		Catalog:    entity.NewCatalog(code, name),
		Category:   CategoryTechnology,
		UnitPrice:  price,
		Technology: &attrs,
	}
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.UnitPrice.IsNegative() {
		return apperror.NewInvalidPrice(p.UnitPrice.String()).
			WithDetail("product_code", p.Code)
	}

	set := 0
	for _, present := range []bool{p.OfficeSupply != nil, p.Furniture != nil, p.Technology != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return apperror.NewValidation("exactly one attribute payload is required").
			WithDetail("field", "category").
			WithDetail("product_code", p.Code)
	}

	switch p.Category {
	case CategoryOfficeSupply:
		if p.OfficeSupply == nil {
			return mismatch(p)
		}
		if p.OfficeSupply.PackSize < 1 {
			return apperror.NewValidation("pack size must be at least 1").
				WithDetail("field", "officeSupply.packSize")
		}
	case CategoryFurniture:
		if p.Furniture == nil {
			return mismatch(p)
		}
		f := p.Furniture
		if f.WidthCM < 0 || f.DepthCM < 0 || f.HeightCM < 0 {
			return apperror.NewValidation("dimensions cannot be negative").
				WithDetail("field", "furniture")
		}
	case CategoryTechnology:
		if p.Technology == nil {
			return mismatch(p)
		}
		if p.Technology.WarrantyMonths < 0 {
			return apperror.NewValidation("warranty cannot be negative").
				WithDetail("field", "technology.warrantyMonths")
		}
	default:
		return apperror.NewValidation("invalid category").
			WithDetail("field", "category").
			WithDetail("value", string(p.Category))
	}

	return nil
}

func mismatch(p *Product) error {
	return apperror.NewValidation("attribute payload does not match category").
		WithDetail("field", "category").
		WithDetail("value", string(p.Category))
}

// Attributes returns the category payload.
func (p *Product) Attributes() any {
	switch p.Category {
	case CategoryOfficeSupply:
		return p.OfficeSupply
	case CategoryFurniture:
		return p.Furniture
	case CategoryTechnology:
		return p.Technology
	}
	return nil
}

// Describe renders a one-line description used on document lines.
func (p *Product) Describe() string {
	switch p.Category {
	case CategoryOfficeSupply:
		if a := p.OfficeSupply; a != nil && a.PackSize > 1 {
			return fmt.Sprintf("%s (pack of %d)", p.Name, a.PackSize)
		}
	case CategoryFurniture:
		if a := p.Furniture; a != nil {
			return fmt.Sprintf("%s, %s %dx%dx%d cm", p.Name, a.Material, a.WidthCM, a.DepthCM, a.HeightCM)
		}
	case CategoryTechnology:
		if a := p.Technology; a != nil {
			return fmt.Sprintf("%s %s %s (%d mo. warranty)", a.Brand, a.Model, p.Name, a.WarrantyMonths)
		}
	}
	return p.Name
}

// Clone returns a deep copy, so stored records never alias caller memory.
func (p *Product) Clone() *Product {
	c := *p
	if p.OfficeSupply != nil {
		a := *p.OfficeSupply
		c.OfficeSupply = &a
	}
	if p.Furniture != nil {
		a := *p.Furniture
		c.Furniture = &a
	}
	if p.Technology != nil {
		a := *p.Technology
		c.Technology = &a
	}
	return &c
}

// IsValidCategory reports whether c is one of the closed set.
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryOfficeSupply, CategoryFurniture, CategoryTechnology:
		return true
	}
	return false
}
