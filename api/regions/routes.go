package regions

import (
	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
)

// RegisterRoutes registers region routes under the asset group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, saveMiddleware gin.HandlerFunc) {
	// GET /api/v1/assets/:id/regions - Get the saved region set
	router.GET("/:id/regions", Get(deps))

	// PUT /api/v1/assets/:id/regions - Replace the complete region set
	router.PUT("/:id/regions", saveMiddleware, Put(deps))
}
