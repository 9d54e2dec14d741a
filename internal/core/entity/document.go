package entity

import (
	"context"
	"time"

	"salesdesk/internal/core/apperror"
)

// Document is the header shared by sales documents: who it is for and who wrote it.
type Document struct {
	BaseDocument

	// ClientID references the customer the document is addressed to
	ClientID string `json:"clientId"`

	// AuthorID references the salesperson responsible for the document
	AuthorID string `json:"authorId"`

	// Comment is an optional user comment
	Comment string `json:"comment,omitempty"`
}

// NewDocument creates a document header numbered number and stamped at now.
func NewDocument(number, clientID, authorID string, now time.Time, actor string) Document {
	return Document{
		BaseDocument: NewBaseDocument(number, now, actor),
		ClientID:     clientID,
		AuthorID:     authorID,
	}
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if d.ClientID == "" {
		return apperror.NewValidation("client is required").
			WithDetail("field", "clientId")
	}
	if d.AuthorID == "" {
		return apperror.NewValidation("author is required").
			WithDetail("field", "authorId")
	}
	return nil
}
