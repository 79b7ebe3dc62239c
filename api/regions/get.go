package regions

import (
	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
)

// Get handles fetching the saved region set for an asset
// @Summary      Get regions
// @Description  Fetch the saved region set for an asset, intervals ordered by start time, labels inlined
// @Tags         regions
// @Produce      json
// @Param        id path int true "Asset ID"
// @Success      200 {object} types.RegionsResponse "Saved regions"
// @Failure      404 {object} types.ErrorResponse "Asset not found"
// @Router       /api/v1/assets/{id}/regions [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		assetID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		list, err := deps.RegionService.ListByAsset(c.Request.Context(), assetID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.RegionsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Regions retrieved successfully",
			},
			Regions: types.FromRegionModels(list),
			Count:   len(list),
		})
	}
}
