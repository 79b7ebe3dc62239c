package export

import (
	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
)

// Get handles export document generation
// @Summary      Export annotations
// @Description  Serialize the asset's saved regions, labels and derived statistics into a self-contained JSON document. The asset is marked exported; its regions are not touched.
// @Tags         export
// @Produce      json
// @Param        id path int true "Asset ID"
// @Success      200 {object} export.Document "Export document"
// @Failure      404 {object} types.ErrorResponse "Asset not found"
// @Router       /api/v1/assets/{id}/export [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		assetID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		doc, err := deps.ExportService.Export(c.Request.Context(), assetID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, doc)
	}
}
