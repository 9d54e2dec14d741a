package lifecycle

import (
	"context"
	"fmt"
	"time"

	"salesdesk/internal/core/apperror"
	appctx "salesdesk/internal/core/context"
	"salesdesk/internal/core/id"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/documents/quotation"
	"salesdesk/internal/domain/pricing"
	"salesdesk/internal/domain/promotion"
	"salesdesk/pkg/logger"
)

// QuotationRequest opens a new quotation.
type QuotationRequest struct {
	ClientID string
	// AuthorID defaults to the acting user.
	AuthorID string
	Comment  string
}

// CreateQuotation creates an empty DRAFT quotation.
func (s *Service) CreateQuotation(ctx context.Context, req QuotationRequest) (*quotation.Quotation, error) {
	actor := appctx.Actor(ctx)
	author := req.AuthorID
	if author == "" {
		author = actor
	}

	q := quotation.New("", req.ClientID, author, s.clock.Now(), actor)
	q.Comment = req.Comment
	if err := q.Validate(ctx); err != nil {
		return nil, err
	}

	number, err := s.nextNumber(ctx, quotation.NumberPrefix, s.opts.QuotationStrategy)
	if err != nil {
		return nil, err
	}
	q.Number = number

	if err := s.quotations.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("create quotation: %w", err)
	}

	logger.Info(ctx, "quotation created", "quotation_id", q.ID, "number", q.Number, "client_id", q.ClientID)
	return q, nil
}

// PreviewLine prices quantity units of productCode as they would be added now, without mutating anything.
func (s *Service) PreviewLine(ctx context.Context, productCode string, quantity int) (pricing.LineItem, error) {
	return s.priceLine(ctx, productCode, quantity, s.clock.Now())
}

// ResolvePromotion returns the promotion applicable to productCode on onDate, or nil.
func (s *Service) ResolvePromotion(ctx context.Context, productCode string, onDate time.Time) (*promotion.Promotion, error) {
	return s.resolver.Resolve(ctx, productCode, onDate)
}

func (s *Service) priceLine(ctx context.Context, productCode string, quantity int, on time.Time) (pricing.LineItem, error) {
	if quantity <= 0 {
		return pricing.LineItem{}, apperror.NewInvalidQuantity(quantity).WithDetail("product_code", productCode)
	}

	p, err := s.catalog.ProductByCode(ctx, productCode)
	if err != nil {
		return pricing.LineItem{}, err
	}

	promo, err := s.resolver.Resolve(ctx, productCode, on)
	if err != nil {
		return pricing.LineItem{}, err
	}

	return pricing.PriceLineItem(p, quantity, p.UnitPrice, promo)
}

// AddQuotationLine appends a line priced from the current catalog price and promotion.
// The price is captured on the line and never re-read.
func (s *Service) AddQuotationLine(ctx context.Context, quotationID id.ID, productCode string, quantity int) (*quotation.Quotation, pricing.LineItem, error) {
	unlock := s.lock(quotationID)
	defer unlock()

	q, err := s.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return nil, pricing.LineItem{}, err
	}
	if err := q.CanModify(); err != nil {
		return nil, pricing.LineItem{}, err
	}

	now := s.clock.Now()
	item, err := s.priceLine(ctx, productCode, quantity, now)
	if err != nil {
		return nil, pricing.LineItem{}, err
	}

	q.AddLine(item)
	q.TouchAt(now, appctx.Actor(ctx))
	if err := s.quotations.Update(ctx, q); err != nil {
		return nil, pricing.LineItem{}, fmt.Errorf("update quotation: %w", err)
	}

	logger.Info(ctx, "quotation line added",
		"quotation_number", q.Number,
		"product_code", item.ProductCode,
		"quantity", item.Quantity,
		"subtotal", item.Subtotal,
	)
	return q, item, nil
}

// RemoveQuotationLine drops a line from a DRAFT quotation.
func (s *Service) RemoveQuotationLine(ctx context.Context, quotationID, lineID id.ID) (*quotation.Quotation, error) {
	unlock := s.lock(quotationID)
	defer unlock()

	q, err := s.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if err := q.CanModify(); err != nil {
		return nil, err
	}
	if err := q.RemoveLine(lineID); err != nil {
		return nil, err
	}

	q.TouchAt(s.clock.Now(), appctx.Actor(ctx))
	if err := s.quotations.Update(ctx, q); err != nil {
		return nil, fmt.Errorf("update quotation: %w", err)
	}

	logger.Info(ctx, "quotation line removed", "quotation_number", q.Number, "line_id", lineID)
	return q, nil
}

// SetQuotationAdjustments sets the document-level discount and tax of a DRAFT quotation.
func (s *Service) SetQuotationAdjustments(ctx context.Context, quotationID id.ID, discount, tax types.Money) (*quotation.Quotation, error) {
	unlock := s.lock(quotationID)
	defer unlock()

	q, err := s.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if err := q.CanModify(); err != nil {
		return nil, err
	}
	if err := q.SetAdjustments(discount, tax); err != nil {
		return nil, err
	}

	q.TouchAt(s.clock.Now(), appctx.Actor(ctx))
	if err := s.quotations.Update(ctx, q); err != nil {
		return nil, fmt.Errorf("update quotation: %w", err)
	}

	logger.Info(ctx, "quotation adjusted", "quotation_number", q.Number, "discount", discount, "tax", tax, "total", q.Total)
	return q, nil
}
