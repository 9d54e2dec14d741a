package quotation

import (
	"context"

	"salesdesk/internal/core/id"
)

// Repository defines operations for quotation documents.
type Repository interface {
	Create(ctx context.Context, doc *Quotation) error
	GetByID(ctx context.Context, docID id.ID) (*Quotation, error)
	GetByNumber(ctx context.Context, number string) (*Quotation, error)
	Update(ctx context.Context, doc *Quotation) error
	List(ctx context.Context) ([]*Quotation, error)
}
