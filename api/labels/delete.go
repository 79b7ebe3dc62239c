package labels

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
)

// Delete handles label deletion
// @Summary      Delete a label
// @Description  Delete a label that no saved region references. Labels still in use are refused; deactivate them instead.
// @Tags         labels
// @Produce      json
// @Param        id path int true "Label ID"
// @Success      200 {object} types.BaseResponse "Label deleted"
// @Failure      404 {object} types.ErrorResponse "Label not found"
// @Failure      409 {object} types.ErrorResponse "Conflict - label still referenced by regions"
// @Router       /api/v1/labels/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.LabelService.Delete(c.Request.Context(), id); err != nil {
			types.SendAppError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Label deleted successfully",
		})
	}
}
