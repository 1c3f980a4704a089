package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartcards/backend/internal/model"
	"github.com/smartcards/backend/internal/service"
)

type FlashcardHandler struct {
	svc *service.FlashcardService
}

func NewFlashcardHandler(svc *service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{svc: svc}
}

// ListByGroup godoc
// @Summary List the caller's cards in a group
// @Tags flashcards
// @Produce json
// @Security BearerAuth
// @Param group_id path string true "Group ID"
// @Success 200 {array} model.Flashcard
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /flashcards/group/{group_id} [get]
func (h *FlashcardHandler) ListByGroup(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		unauthorized(c)
		return
	}

	cards, err := h.svc.ListByGroup(c.Request.Context(), user.ID, c.Param("group_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// Update godoc
// @Summary Edit a card's question or answer
// @Tags flashcards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param card_id path string true "Card ID"
// @Param request body model.FlashcardUpdate true "Fields to change"
// @Success 200 {object} model.Flashcard
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /flashcards/{card_id} [put]
func (h *FlashcardHandler) Update(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		unauthorized(c)
		return
	}

	var upd model.FlashcardUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	card, err := h.svc.Update(c.Request.Context(), user.ID, c.Param("card_id"), upd)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// Delete godoc
// @Summary Delete a card
// @Tags flashcards
// @Produce json
// @Security BearerAuth
// @Param card_id path string true "Card ID"
// @Success 200 {object} model.DetailResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /flashcards/{card_id} [delete]
func (h *FlashcardHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		unauthorized(c)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), user.ID, c.Param("card_id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Card deleted"})
}
