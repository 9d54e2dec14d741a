package memory

import (
	"context"
	"sync"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
	"salesdesk/internal/core/tx"
	"salesdesk/internal/domain/documents/invoice"
	"salesdesk/internal/domain/documents/order"
	"salesdesk/internal/domain/documents/quotation"
)

// docStore keeps cloned documents by id and number, in creation order.
type docStore[T any] struct {
	mu       sync.RWMutex
	entity   string
	byID     map[id.ID]T
	byNumber map[string]id.ID
	order    []id.ID

	clone func(T) T
	key   func(T) (id.ID, string)
}

func newDocStore[T any](entity string, clone func(T) T, key func(T) (id.ID, string)) *docStore[T] {
	return &docStore[T]{
		entity:   entity,
		byID:     make(map[id.ID]T),
		byNumber: make(map[string]id.ID),
		clone:    clone,
		key:      key,
	}
}

func (s *docStore[T]) Create(ctx context.Context, doc T) error {
	docID, number := s.key(doc)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[docID]; exists {
		return apperror.NewDuplicate(s.entity, "id", docID.String())
	}
	if _, exists := s.byNumber[number]; exists {
		return apperror.NewDuplicate(s.entity, "number", number)
	}

	s.byID[docID] = s.clone(doc)
	s.byNumber[number] = docID
	s.order = append(s.order, docID)

	tx.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.byID, docID)
		delete(s.byNumber, number)
		for i := len(s.order) - 1; i >= 0; i-- {
			if s.order[i] == docID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	})
	return nil
}

func (s *docStore[T]) GetByID(_ context.Context, docID id.ID) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.byID[docID]
	if !ok {
		var zero T
		return zero, apperror.NewNotFound(s.entity, docID.String())
	}
	return s.clone(doc), nil
}

func (s *docStore[T]) GetByNumber(ctx context.Context, number string) (T, error) {
	s.mu.RLock()
	docID, ok := s.byNumber[number]
	s.mu.RUnlock()

	if !ok {
		var zero T
		return zero, apperror.NewNotFound(s.entity, number)
	}
	return s.GetByID(ctx, docID)
}

func (s *docStore[T]) Update(ctx context.Context, doc T) error {
	docID, _ := s.key(doc)

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.byID[docID]
	if !ok {
		return apperror.NewNotFound(s.entity, docID.String())
	}
	s.byID[docID] = s.clone(doc)

	tx.OnRollback(ctx, func() {
		s.mu.Lock()
		s.byID[docID] = prev
		s.mu.Unlock()
	})
	return nil
}

func (s *docStore[T]) List(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, docID := range s.order {
		out = append(out, s.clone(s.byID[docID]))
	}
	return out, nil
}

// QuotationRepo stores quotations.
type QuotationRepo struct {
	*docStore[*quotation.Quotation]
}

// NewQuotationRepo creates an empty quotation store.
func NewQuotationRepo() *QuotationRepo {
	return &QuotationRepo{newDocStore("quotation",
		(*quotation.Quotation).Clone,
		func(q *quotation.Quotation) (id.ID, string) { return q.ID, q.Number },
	)}
}

var _ quotation.Repository = (*QuotationRepo)(nil)

// OrderRepo stores orders.
type OrderRepo struct {
	*docStore[*order.Order]
}

// NewOrderRepo creates an empty order store.
func NewOrderRepo() *OrderRepo {
	return &OrderRepo{newDocStore("order",
		(*order.Order).Clone,
		func(o *order.Order) (id.ID, string) { return o.ID, o.Number },
	)}
}

var _ order.Repository = (*OrderRepo)(nil)

// InvoiceRepo stores invoices.
type InvoiceRepo struct {
	*docStore[*invoice.Invoice]
}

// NewInvoiceRepo creates an empty invoice store.
func NewInvoiceRepo() *InvoiceRepo {
	return &InvoiceRepo{newDocStore("invoice",
		(*invoice.Invoice).Clone,
		func(inv *invoice.Invoice) (id.ID, string) { return inv.ID, inv.Number },
	)}
}

var _ invoice.Repository = (*InvoiceRepo)(nil)
