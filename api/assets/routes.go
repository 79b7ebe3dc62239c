package assets

import (
	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
)

// RegisterRoutes registers asset routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/assets - Register a media asset
	router.POST("", Post(deps))

	// GET /api/v1/assets/:id - Get a single asset
	router.GET("/:id", GetByID(deps))
}
