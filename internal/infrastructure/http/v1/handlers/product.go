package handlers

import (
	"github.com/gin-gonic/gin"

	"salesdesk/internal/domain/catalogs/product"
	"salesdesk/internal/infrastructure/http/v1/dto"
)

// ProductHandler handles catalog maintenance requests.
type ProductHandler struct {
	*BaseHandler
	service *product.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	return &ProductHandler{BaseHandler: base, service: service}
}

// List handles GET /products.
func (h *ProductHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	resp := make([]dto.ProductResponse, 0, len(items))
	for _, p := range items {
		resp = append(resp, dto.FromProduct(p))
	}
	h.OK(c, dto.NewListResponse(resp))
}

// Get handles GET /products/:code.
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.service.ProductByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProduct(p))
}

// Create handles POST /products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p := req.ToEntity()
	if err := h.service.Register(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}
	h.CreatedWith(c, dto.FromProduct(p))
}

// ChangePrice handles PUT /products/:code/price.
// Documents already holding the product keep the price they captured.
func (h *ProductHandler) ChangePrice(c *gin.Context) {
	var req dto.ChangePriceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.service.ChangePrice(c.Request.Context(), c.Param("code"), req.UnitPrice)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProduct(p))
}
