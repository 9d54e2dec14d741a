package handlers

import (
	"github.com/gin-gonic/gin"

	"salesdesk/internal/core/clock"
	"salesdesk/internal/domain/promotion"
	"salesdesk/internal/infrastructure/http/v1/dto"
)

// PromotionHandler handles promotion book requests.
type PromotionHandler struct {
	*BaseHandler
	service  *promotion.Service
	resolver *promotion.Resolver
	clock    clock.Clock
}

// NewPromotionHandler creates a new promotion handler.
func NewPromotionHandler(base *BaseHandler, service *promotion.Service, clk clock.Clock) *PromotionHandler {
	return &PromotionHandler{
		BaseHandler: base,
		service:     service,
		resolver:    promotion.NewResolver(service),
		clock:       clk,
	}
}

// List handles GET /promotions.
func (h *PromotionHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	resp := make([]dto.PromotionResponse, 0, len(items))
	for _, p := range items {
		resp = append(resp, dto.FromPromotion(p))
	}
	h.OK(c, dto.NewListResponse(resp))
}

// Create handles POST /promotions.
func (h *PromotionHandler) Create(c *gin.Context) {
	var req dto.CreatePromotionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := h.service.Register(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}
	h.CreatedWith(c, dto.FromPromotion(p))
}

// Resolve handles GET /promotions/resolve?product=&date=.
// Without a date the current day is used. A null promotion means list price.
func (h *PromotionHandler) Resolve(c *gin.Context) {
	var q dto.ResolvePromotionQuery
	if !h.BindQuery(c, &q) {
		return
	}

	onDate := clock.Date(h.clock.Now())
	if q.Date != "" {
		parsed, err := dto.ParseDate("date", q.Date)
		if err != nil {
			h.Error(c, err)
			return
		}
		onDate = parsed
	}

	p, err := h.resolver.Resolve(c.Request.Context(), q.Product, onDate)
	if err != nil {
		h.Error(c, err)
		return
	}

	resp := dto.ResolvedPromotionResponse{
		ProductCode: q.Product,
		Date:        onDate.Format(dto.DateLayout),
	}
	if p != nil {
		pr := dto.FromPromotion(p)
		resp.Promotion = &pr
	}
	h.OK(c, resp)
}
