package labels

import (
	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
)

// Put handles label edits
// @Summary      Update a label
// @Description  Rename or restyle a label. The scope cannot change and the new name must stay unique within it.
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        id path int true "Label ID"
// @Param        request body types.UpdateLabelRequest true "New label fields"
// @Success      200 {object} types.SingleLabelResponse "Updated label"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid fields"
// @Failure      404 {object} types.ErrorResponse "Label not found"
// @Failure      409 {object} types.ErrorResponse "Conflict - duplicate name in scope"
// @Router       /api/v1/labels/{id} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.UpdateLabelRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		label, err := deps.LabelService.Update(c.Request.Context(), id, req.Name, req.Color, req.Description)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		out := types.FromLabelModel(label)
		types.SendSuccess(c, types.SingleLabelResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Label updated successfully",
			},
			Label: &out,
		})
	}
}
