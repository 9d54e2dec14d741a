package handlers

import (
	"github.com/gin-gonic/gin"

	"salesdesk/internal/domain/catalogs/product"
	"salesdesk/internal/domain/registers/stock"
	"salesdesk/internal/infrastructure/http/v1/dto"
)

// InventoryHandler handles stock level requests.
type InventoryHandler struct {
	*BaseHandler
	stock    *stock.Service
	products product.Provider
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(base *BaseHandler, stockService *stock.Service, products product.Provider) *InventoryHandler {
	return &InventoryHandler{BaseHandler: base, stock: stockService, products: products}
}

// List handles GET /inventory.
func (h *InventoryHandler) List(c *gin.Context) {
	records, err := h.stock.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	resp := make([]dto.InventoryResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, dto.FromStockRecord(r))
	}
	h.OK(c, dto.NewListResponse(resp))
}

// Get handles GET /inventory/:code.
func (h *InventoryHandler) Get(c *gin.Context) {
	rec, err := h.stock.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromStockRecord(rec))
}

// Set handles PUT /inventory/:code. Only catalog products can carry stock.
func (h *InventoryHandler) Set(c *gin.Context) {
	ctx := c.Request.Context()
	code := c.Param("code")

	var req dto.SetInventoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if _, err := h.products.ProductByCode(ctx, code); err != nil {
		h.Error(c, err)
		return
	}

	rec, err := h.stock.Set(ctx, code, *req.OnHand, req.IsActive())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromStockRecord(rec))
}
