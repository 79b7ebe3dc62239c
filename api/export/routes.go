package export

import (
	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
)

// RegisterRoutes registers export routes under the asset group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/assets/:id/export - Build the export document
	router.GET("/:id/export", Get(deps))
}
