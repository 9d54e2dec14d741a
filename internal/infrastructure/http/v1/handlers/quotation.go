package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/lifecycle"
	"salesdesk/internal/infrastructure/http/v1/dto"
)

// QuotationHandler handles quotation authoring and conversion.
type QuotationHandler struct {
	*BaseHandler
	lifecycle *lifecycle.Service
	taxRate   decimal.Decimal
}

// NewQuotationHandler creates a new quotation handler.
// taxRate is applied when an adjustments request omits the tax.
func NewQuotationHandler(base *BaseHandler, svc *lifecycle.Service, taxRate decimal.Decimal) *QuotationHandler {
	return &QuotationHandler{BaseHandler: base, lifecycle: svc, taxRate: taxRate}
}

// List handles GET /quotations.
func (h *QuotationHandler) List(c *gin.Context) {
	items, err := h.lifecycle.Quotations(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	resp := make([]dto.QuotationResponse, 0, len(items))
	for _, q := range items {
		resp = append(resp, dto.FromQuotation(q))
	}
	h.OK(c, dto.NewListResponse(resp))
}

// Create handles POST /quotations.
func (h *QuotationHandler) Create(c *gin.Context) {
	var req dto.CreateQuotationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	q, err := h.lifecycle.CreateQuotation(c.Request.Context(), lifecycle.QuotationRequest{
		ClientID: req.ClientID,
		AuthorID: req.AuthorID,
		Comment:  req.Comment,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.CreatedWith(c, dto.FromQuotation(q))
}

// Get handles GET /quotations/:id.
func (h *QuotationHandler) Get(c *gin.Context) {
	quotationID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	q, err := h.lifecycle.Quotation(c.Request.Context(), quotationID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromQuotation(q))
}

// AddLine handles POST /quotations/:id/lines.
func (h *QuotationHandler) AddLine(c *gin.Context) {
	quotationID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.AddLineRequest
	if !h.BindJSON(c, &req) {
		return
	}

	q, _, err := h.lifecycle.AddQuotationLine(c.Request.Context(), quotationID, req.ProductCode, req.Quantity)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.CreatedWith(c, dto.FromQuotation(q))
}

// RemoveLine handles DELETE /quotations/:id/lines/:lineId.
func (h *QuotationHandler) RemoveLine(c *gin.Context) {
	quotationID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	lineID, ok := h.ParseID(c, "lineId")
	if !ok {
		return
	}

	q, err := h.lifecycle.RemoveQuotationLine(c.Request.Context(), quotationID, lineID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromQuotation(q))
}

// SetAdjustments handles PUT /quotations/:id/adjustments.
func (h *QuotationHandler) SetAdjustments(c *gin.Context) {
	ctx := c.Request.Context()

	quotationID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.AdjustmentsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	var tax types.Money
	if req.Tax != nil {
		tax = *req.Tax
	} else {
		q, err := h.lifecycle.Quotation(ctx, quotationID)
		if err != nil {
			h.Error(c, err)
			return
		}
		tax = TaxOn(q.Subtotal, req.Discount, h.taxRate)
	}

	q, err := h.lifecycle.SetQuotationAdjustments(ctx, quotationID, req.Discount, tax)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromQuotation(q))
}

// Convert handles POST /quotations/:id/convert.
func (h *QuotationHandler) Convert(c *gin.Context) {
	quotationID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	o, err := h.lifecycle.ConvertQuotationToOrder(c.Request.Context(), quotationID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.CreatedWith(c, dto.FromOrder(o))
}

// Preview handles GET /quotations/preview?product=&quantity=.
func (h *QuotationHandler) Preview(c *gin.Context) {
	var q dto.PreviewQuery
	if !h.BindQuery(c, &q) {
		return
	}

	line, err := h.lifecycle.PreviewLine(c.Request.Context(), q.Product, q.Quantity)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromLine(line))
}

// TaxOn computes tax at rate on subtotal less discount, rounded to cents.
// A discount larger than the subtotal leaves nothing to tax.
func TaxOn(subtotal, discount types.Money, rate decimal.Decimal) types.Money {
	return types.ClampZero(subtotal.Sub(discount)).Mul(rate).Round(2)
}
