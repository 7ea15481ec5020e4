// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// RecordRouteHandler defines the routes every store-scoped record exposes.
type RecordRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Updatable() bool
}

// RegisterRecordRoutes registers the standard list/create/get routes, plus
// PUT /:id when the handler supports in-place edits.
//
// Usage:
//
//	handler := handlers.NewProductHandler(base, productService)
//	RegisterRecordRoutes(storeScope.Group("/products"), handler)
func RegisterRecordRoutes(group *gin.RouterGroup, handler RecordRouteHandler) {
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.Get)
	if handler.Updatable() {
		group.PUT("/:id", handler.Update)
	}
}
