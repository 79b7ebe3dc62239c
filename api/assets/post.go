package assets

import (
	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
	"github.com/annolab/annotator-api/internal/models"
)

// Post handles asset registration
// @Summary      Register an asset
// @Description  Register an audio or image asset for annotation. New assets start in draft status. Duration (audio) or pixel dimensions (image) anchor region validation.
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        request body types.RegisterAssetRequest true "Asset metadata"
// @Success      201 {object} types.SingleAssetResponse "Registered asset"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid fields"
// @Router       /api/v1/assets [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RegisterAssetRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		asset := &models.Asset{
			OwnerID:         req.OwnerID,
			Kind:            req.Kind,
			Title:           req.Title,
			Filename:        req.Filename,
			URL:             req.URL,
			DurationSeconds: req.Duration,
			Width:           req.Width,
			Height:          req.Height,
		}

		if err := deps.AssetService.Register(c.Request.Context(), asset); err != nil {
			types.SendAppError(c, err)
			return
		}

		out := types.FromAssetModel(asset)
		types.SendCreated(c, types.SingleAssetResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Asset registered successfully",
			},
			Asset: &out,
		})
	}
}
