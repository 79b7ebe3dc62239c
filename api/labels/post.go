package labels

import (
	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
	"github.com/annolab/annotator-api/internal/services/labels"
)

// Post handles label creation
// @Summary      Create a label
// @Description  Create a label in an owner or asset scope. Names are unique within the scope; colors are normalized to lowercase #rrggbb.
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        request body types.CreateLabelRequest true "Label fields and scope"
// @Success      201 {object} types.SingleLabelResponse "Created label"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid fields"
// @Failure      409 {object} types.ErrorResponse "Conflict - duplicate name in scope"
// @Router       /api/v1/labels [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateLabelRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		scope := labels.Scope{OwnerID: req.OwnerID, AssetID: req.AssetID}
		label, err := deps.LabelService.Create(c.Request.Context(), scope, req.Name, req.Color, req.Description)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		out := types.FromLabelModel(label)
		types.SendCreated(c, types.SingleLabelResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Label created successfully",
			},
			Label: &out,
		})
	}
}
