package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartcards/backend/internal/service"
)

type GroupHandler struct {
	svc *service.GroupService
}

func NewGroupHandler(svc *service.GroupService) *GroupHandler {
	return &GroupHandler{svc: svc}
}

// List godoc
// @Summary List the caller's flashcard groups
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.GroupResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /groups [get]
func (h *GroupHandler) List(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		unauthorized(c)
		return
	}

	groups, err := h.svc.List(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// Upload godoc
// @Summary Upload a file and create a group of generated cards
// @Tags groups
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Source document"
// @Success 200 {object} model.FileUploadResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /groups/upload [post]
func (h *GroupHandler) Upload(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		unauthorized(c)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	res, err := h.svc.CreateFromUpload(c.Request.Context(), user.ID, file.Filename)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete godoc
// @Summary Delete a group and its cards
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param group_id path string true "Group ID"
// @Success 200 {object} model.DetailResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /groups/{group_id} [delete]
func (h *GroupHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		unauthorized(c)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), user.ID, c.Param("group_id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Group deleted"})
}
