package regions

import (
	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
)

// Put handles replace-all region saves
// @Summary      Save regions
// @Description  Atomically replace the complete region set for an asset. Every region is validated first; any failure aborts the save and leaves the previous set untouched. A first non-empty save moves the asset from draft to labeled.
// @Tags         regions
// @Accept       json
// @Produce      json
// @Param        id path int true "Asset ID"
// @Param        request body types.SaveRegionsRequest true "Complete region set"
// @Success      200 {object} types.RegionsResponse "Saved regions with persisted IDs, in submitted order"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid geometry or reference"
// @Failure      404 {object} types.ErrorResponse "Asset not found"
// @Router       /api/v1/assets/{id}/regions [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		assetID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.SaveRegionsRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		saved, err := deps.RegionService.ReplaceAll(c.Request.Context(), assetID, req.Regions)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.RegionsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Regions saved successfully",
			},
			Regions: types.FromRegionModels(saved),
			Count:   len(saved),
		})
	}
}
