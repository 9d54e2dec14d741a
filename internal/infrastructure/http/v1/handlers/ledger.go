package handlers

import (
	"github.com/gin-gonic/gin"

	"salesdesk/internal/domain/ledger"
	"salesdesk/internal/infrastructure/http/v1/dto"
)

// LedgerHandler exposes the accounting journal read-only.
type LedgerHandler struct {
	*BaseHandler
	recorder *ledger.Recorder
}

// NewLedgerHandler creates a new ledger handler.
func NewLedgerHandler(base *BaseHandler, recorder *ledger.Recorder) *LedgerHandler {
	return &LedgerHandler{BaseHandler: base, recorder: recorder}
}

// List handles GET /ledger.
func (h *LedgerHandler) List(c *gin.Context) {
	entries, err := h.recorder.Entries(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewLedgerResponse(entries))
}

// ByDocument handles GET /ledger/:number.
func (h *LedgerHandler) ByDocument(c *gin.Context) {
	entries, err := h.recorder.EntriesFor(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewLedgerResponse(entries))
}
