package dto

import (
	"time"

	"salesdesk/internal/domain/registers/stock"
)

// SetInventoryRequest is the request body for setting a product's stock level.
type SetInventoryRequest struct {
	OnHand *int  `json:"onHand" binding:"required"`
	Active *bool `json:"active"`
}

// IsActive defaults to true when the flag is omitted.
func (r *SetInventoryRequest) IsActive() bool {
	return r.Active == nil || *r.Active
}

// InventoryResponse is the API representation of an inventory record.
type InventoryResponse struct {
	ProductCode string    `json:"productCode"`
	OnHand      int       `json:"onHand"`
	Active      bool      `json:"active"`
	Available   int       `json:"available"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromStockRecord creates InventoryResponse from a stock record.
func FromStockRecord(r stock.Record) InventoryResponse {
	return InventoryResponse{
		ProductCode: r.ProductCode,
		OnHand:      r.OnHand,
		Active:      r.Active,
		Available:   r.Available(),
		UpdatedAt:   r.UpdatedAt,
	}
}
