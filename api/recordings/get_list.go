package recordings

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/voicenotes/voicenote-api/api/types"
)

// GetList returns a user's recordings, newest first
// @Summary List a user's recordings
// @Tags recordings
// @Produce json
// @Param user_id query string true "Owning user"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} types.ListRecordingsResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /api/v1/recordings [get]
func GetList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  "error",
				Message: "user_id query parameter is required",
			})
			return
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		recordings, total, err := deps.RecordingService.List(c.Request.Context(), userID, page, limit)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.ListRecordingsResponse{
			Recordings: recordings,
			Total:      total,
			Page:       page,
			Limit:      limit,
		})
	}
}
