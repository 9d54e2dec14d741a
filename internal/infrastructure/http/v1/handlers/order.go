package handlers

import (
	"github.com/gin-gonic/gin"

	"salesdesk/internal/domain/lifecycle"
	"salesdesk/internal/infrastructure/http/v1/dto"
)

// OrderHandler handles order fulfillment and invoicing.
type OrderHandler struct {
	*BaseHandler
	lifecycle *lifecycle.Service
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(base *BaseHandler, svc *lifecycle.Service) *OrderHandler {
	return &OrderHandler{BaseHandler: base, lifecycle: svc}
}

// List handles GET /orders.
func (h *OrderHandler) List(c *gin.Context) {
	items, err := h.lifecycle.Orders(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(items))
	for _, o := range items {
		resp = append(resp, dto.FromOrder(o))
	}
	h.OK(c, dto.NewListResponse(resp))
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	o, err := h.lifecycle.Order(c.Request.Context(), orderID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromOrder(o))
}

// Fulfill handles POST /orders/:id/fulfill.
func (h *OrderHandler) Fulfill(c *gin.Context) {
	orderID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	o, err := h.lifecycle.FulfillOrder(c.Request.Context(), orderID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromOrder(o))
}

// Invoice handles POST /orders/:id/invoice. The body is optional.
func (h *OrderHandler) Invoice(c *gin.Context) {
	orderID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if c.Request.ContentLength != 0 && !h.BindJSON(c, &req) {
		return
	}

	inv, err := h.lifecycle.ConvertOrderToInvoice(c.Request.Context(), orderID, lifecycle.InvoiceRequest{
		EmployeeID: req.EmployeeID,
		Delivery:   req.Delivery,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.CreatedWith(c, dto.FromInvoice(inv))
}
