package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	appctx "salesdesk/internal/core/context"
)

func TestFromContext_EnrichesTraceAndUser(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := &Logger{zap.New(core).Sugar()}

	ctx := WithLogger(context.Background(), base)
	ctx = appctx.WithTrace(ctx, &appctx.TraceContext{TraceID: "t-1", RequestID: "r-1"})
	ctx = appctx.WithUser(ctx, &appctx.UserContext{UserID: "u-7"})
	ctx = appctx.WithDocument(ctx, "SO-2026-00001")

	Info(ctx, "stock decremented", "products", 2)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "stock decremented", entries[0].Message)
		assert.Equal(t, "t-1", fields["trace_id"])
		assert.Equal(t, "r-1", fields["request_id"])
		assert.Equal(t, "u-7", fields["user_id"])
		assert.Equal(t, "SO-2026-00001", fields["document_number"])
		assert.EqualValues(t, 2, fields["products"])
	}
}

func TestNew_FallsBackToInfoOnBadLevel(t *testing.T) {
	l, err := New(Config{Level: "loud", OutputPaths: []string{"stderr"}})
	if assert.NoError(t, err) {
		assert.True(t, l.Desugar().Core().Enabled(zap.InfoLevel))
		assert.False(t, l.Desugar().Core().Enabled(zap.DebugLevel))
	}
}

func TestFromContext_NoDocumentField(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := WithLogger(context.Background(), &Logger{zap.New(core).Sugar()})

	Info(ctx, "server started")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.NotContains(t, entries[0].ContextMap(), "document_number")
	}
}
