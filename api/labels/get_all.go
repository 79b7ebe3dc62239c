package labels

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
	"github.com/annolab/annotator-api/internal/services/labels"
)

// GetAll handles listing the labels of one scope
// @Summary      List labels
// @Description  List the labels of an owner (audio) or an asset (image), ordered by name. Pass active=true to restrict to the selection palette.
// @Tags         labels
// @Produce      json
// @Param        owner_id query int false "Owner scope for audio labels"
// @Param        asset_id query int false "Asset scope for image labels"
// @Param        active query bool false "Only active labels"
// @Success      200 {object} types.LabelsResponse "Labels in the scope"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid scope"
// @Router       /api/v1/labels [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, ok := scopeFromQuery(c)
		if !ok {
			return
		}

		activeOnly := c.Query("active") == "true"

		list, err := deps.LabelService.List(c.Request.Context(), scope, activeOnly)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		out := types.FromLabelModels(list)
		for i := range out {
			if usage, err := deps.LabelService.UsageCount(c.Request.Context(), out[i].ID); err == nil {
				u := usage
				out[i].UsageCount = &u
			}
		}

		types.SendSuccess(c, types.LabelsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Labels retrieved successfully",
			},
			Labels: out,
			Count:  len(out),
		})
	}
}

// scopeFromQuery parses the owner_id/asset_id query pair into a scope.
// Sends the error response itself when the pair is invalid.
func scopeFromQuery(c *gin.Context) (labels.Scope, bool) {
	var scope labels.Scope

	if raw := c.Query("owner_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			types.SendBadRequest(c, "Invalid owner_id")
			return scope, false
		}
		id := uint(v)
		scope.OwnerID = &id
	}
	if raw := c.Query("asset_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			types.SendBadRequest(c, "Invalid asset_id")
			return scope, false
		}
		id := uint(v)
		scope.AssetID = &id
	}

	if !scope.Valid() {
		types.SendBadRequest(c, "Exactly one of owner_id or asset_id is required")
		return scope, false
	}
	return scope, true
}
