package context

import "context"

type documentKey struct{}

// WithDocument tags ctx with the number of the document being processed.
func WithDocument(ctx context.Context, number string) context.Context {
	return context.WithValue(ctx, documentKey{}, number)
}

// GetDocument returns the document number from ctx or empty string.
func GetDocument(ctx context.Context) string {
	if v, ok := ctx.Value(documentKey{}).(string); ok {
		return v
	}
	return ""
}
