package api

import (
	"net/http"

	reqdto "eventora/internal/handler/dto/request"
	resdto "eventora/internal/handler/dto/response"
	"eventora/internal/handler/httperr"
	"eventora/internal/usecase/commands"
	"eventora/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MessageHandler struct {
	cmd commands.MessageCommands
	q   queries.MessageQueryService
}

func NewMessageHandler(cmd commands.MessageCommands, q queries.MessageQueryService) *MessageHandler {
	return &MessageHandler{cmd: cmd, q: q}
}

// @Summary Send message
// @Description Append a message to the request's thread
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 201 {array} resdto.MessageResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	actorID, role, ok := principal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmd.Send(c.Request.Context(), actorID, role, requestID, req.Content); err != nil {
		httperr.AbortWithDomainError(c, err, "Send failed")
		return
	}
	thread, err := h.q.Thread(c.Request.Context(), requestID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load thread", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMessages(thread))
}

// @Summary Get thread
// @Description List a request's messages; opening marks counterpart messages read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {array} resdto.MessageResponse
// @Failure 403 {object} httperr.Response
// @Router /requests/{id}/messages [get]
func (h *MessageHandler) Thread(c *gin.Context) {
	actorID, role, ok := principal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	// Reading the thread is what flips the counterpart's messages to read, so
	// the mark runs before the select.
	if err := h.cmd.MarkThreadRead(c.Request.Context(), actorID, role, requestID); err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to open thread")
		return
	}
	thread, err := h.q.Thread(c.Request.Context(), requestID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load thread")
		return
	}
	c.JSON(http.StatusOK, resdto.FromMessages(thread))
}

// @Summary List conversations
// @Description Inbox: one row per thread with unread counts
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ConversationResponse
// @Router /conversations [get]
func (h *MessageHandler) Conversations(c *gin.Context) {
	actorID, role, ok := principal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	views, err := h.q.Conversations(c.Request.Context(), actorID, role)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to list conversations")
		return
	}
	c.JSON(http.StatusOK, resdto.FromConversations(views))
}

// @Summary Unread count
// @Description Total unread messages across the caller's threads
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Router /messages/unread-count [get]
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	actorID, _, ok := principal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	n, err := h.q.UnreadCount(c.Request.Context(), actorID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to count unread")
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": n})
}

// @Summary Delete message
// @Description Sender retracts their own message inside the 5-minute window
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /messages/{id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	actorID, role, ok := principal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmd.Delete(c.Request.Context(), actorID, role, messageID); err != nil {
		httperr.AbortWithDomainError(c, err, "Delete failed")
		return
	}
	c.Status(http.StatusNoContent)
}
