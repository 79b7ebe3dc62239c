package assets

import (
	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
)

// GetByID handles fetching a single asset
// @Summary      Get an asset
// @Description  Fetch one asset with its annotation status and coordinate bounds
// @Tags         assets
// @Produce      json
// @Param        id path int true "Asset ID"
// @Success      200 {object} types.SingleAssetResponse "Asset"
// @Failure      404 {object} types.ErrorResponse "Asset not found"
// @Router       /api/v1/assets/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		asset, err := deps.AssetService.GetByID(c.Request.Context(), id)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		out := types.FromAssetModel(asset)
		types.SendSuccess(c, types.SingleAssetResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Asset retrieved successfully",
			},
			Asset: &out,
		})
	}
}
