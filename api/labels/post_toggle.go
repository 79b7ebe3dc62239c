package labels

import (
	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
)

// PostToggle flips a label's palette visibility
// @Summary      Toggle a label
// @Description  Flip the active flag. Inactive labels disappear from the selection palette but regions keep referencing them.
// @Tags         labels
// @Produce      json
// @Param        id path int true "Label ID"
// @Success      200 {object} types.SingleLabelResponse "Label with the new active state"
// @Failure      404 {object} types.ErrorResponse "Label not found"
// @Router       /api/v1/labels/{id}/toggle [post]
func PostToggle(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		label, err := deps.LabelService.ToggleActive(c.Request.Context(), id)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		out := types.FromLabelModel(label)
		types.SendSuccess(c, types.SingleLabelResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Label toggled successfully",
			},
			Label: &out,
		})
	}
}
