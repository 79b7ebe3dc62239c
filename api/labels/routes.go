package labels

import (
	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
)

// RegisterRoutes registers label taxonomy routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/labels - List labels in a scope
	router.GET("", GetAll(deps))

	// POST /api/v1/labels - Create a label
	router.POST("", Post(deps))

	// PUT /api/v1/labels/:id - Update a label
	router.PUT("/:id", Put(deps))

	// DELETE /api/v1/labels/:id - Delete an unused label
	router.DELETE("/:id", Delete(deps))

	// POST /api/v1/labels/:id/toggle - Flip palette visibility
	router.POST("/:id/toggle", PostToggle(deps))
}
