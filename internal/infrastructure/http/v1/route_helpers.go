// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// DocumentRouteHandler defines the read routes every document handler serves.
type DocumentRouteHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
}

// DocumentCreateHandler is an optional interface for documents created directly
// rather than by converting another document.
type DocumentCreateHandler interface {
	Create(c *gin.Context)
}

// RegisterDocumentRoutes registers the standard read routes for a document type.
// If the handler also implements DocumentCreateHandler, the Create route is registered too.
// Transition routes are registered by the caller on the same group.
//
// Usage:
//
//	handler := handlers.NewOrderHandler(base, lifecycleService)
//	orders := api.Group("/orders")
//	RegisterDocumentRoutes(orders, handler)
//	orders.POST("/:id/fulfill", handler.Fulfill)
func RegisterDocumentRoutes(group *gin.RouterGroup, handler DocumentRouteHandler) {
	group.GET("", handler.List)
	group.GET("/:id", handler.Get)

	if createHandler, ok := handler.(DocumentCreateHandler); ok {
		group.POST("", createHandler.Create)
	}
}
