package handlers

import (
	"github.com/gin-gonic/gin"

	"salesdesk/internal/domain/documents/invoice"
	"salesdesk/internal/domain/lifecycle"
	"salesdesk/internal/infrastructure/http/v1/dto"
)

// InvoiceHandler handles payments and voiding.
type InvoiceHandler struct {
	*BaseHandler
	lifecycle *lifecycle.Service
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(base *BaseHandler, svc *lifecycle.Service) *InvoiceHandler {
	return &InvoiceHandler{BaseHandler: base, lifecycle: svc}
}

// List handles GET /invoices.
func (h *InvoiceHandler) List(c *gin.Context) {
	items, err := h.lifecycle.Invoices(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	resp := make([]dto.InvoiceResponse, 0, len(items))
	for _, inv := range items {
		resp = append(resp, dto.FromInvoice(inv))
	}
	h.OK(c, dto.NewListResponse(resp))
}

// Get handles GET /invoices/:id.
func (h *InvoiceHandler) Get(c *gin.Context) {
	invoiceID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	inv, err := h.lifecycle.Invoice(c.Request.Context(), invoiceID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromInvoice(inv))
}

// RecordPayment handles POST /invoices/:id/payments.
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	invoiceID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	method, err := invoice.ParseMethod(req.Method)
	if err != nil {
		h.Error(c, err)
		return
	}

	inv, p, err := h.lifecycle.RecordPayment(c.Request.Context(), invoiceID, lifecycle.PaymentRequest{
		Amount:    req.Amount,
		Method:    method,
		Reference: req.Reference,
		Notes:     req.Notes,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.CreatedWith(c, dto.PaymentResultResponse{
		Payment: dto.FromPayment(p),
		Invoice: dto.FromInvoice(inv),
	})
}

// ApprovePayment handles POST /invoices/:id/payments/:paymentId/approve.
func (h *InvoiceHandler) ApprovePayment(c *gin.Context) {
	invoiceID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	paymentID, ok := h.ParseID(c, "paymentId")
	if !ok {
		return
	}

	inv, p, err := h.lifecycle.ApprovePayment(c.Request.Context(), invoiceID, paymentID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.PaymentResultResponse{
		Payment: dto.FromPayment(p),
		Invoice: dto.FromInvoice(inv),
	})
}

// Void handles POST /invoices/:id/void.
func (h *InvoiceHandler) Void(c *gin.Context) {
	invoiceID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	inv, err := h.lifecycle.VoidInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromInvoice(inv))
}
