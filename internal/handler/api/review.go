package api

import (
	"net/http"
	"strconv"

	"eventora/internal/domain/actor"
	reqdto "eventora/internal/handler/dto/request"
	resdto "eventora/internal/handler/dto/response"
	"eventora/internal/handler/httperr"
	"eventora/internal/handler/middleware"
	"eventora/internal/usecase/commands"
	"eventora/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmd commands.ReviewCommands
	q   queries.ReviewQueryService
}

func NewReviewHandler(cmd commands.ReviewCommands, q queries.ReviewQueryService) *ReviewHandler {
	return &ReviewHandler{cmd: cmd, q: q}
}

// @Summary Submit review
// @Description Review an accepted, completed request; rating and sentiment derive from the comment
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review"
// @Success 201 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmd.Submit(c.Request.Context(), clientID, req.RequestID, req.Comment)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Submit review failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List provider reviews
// @Description Visible reviews for a provider with optional filters
// @Tags reviews
// @Produce json
// @Param id path string true "Provider ID"
// @Param sentiment query string false "Filter by sentiment"
// @Param min_rating query number false "Minimum rating"
// @Param limit query int false "Max rows"
// @Success 200 {array} resdto.ReviewResponse
// @Router /providers/{id}/reviews [get]
func (h *ReviewHandler) ListForProvider(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider id", nil)
		return
	}

	var filter queries.ReviewFilter
	if s := c.Query("sentiment"); s != "" {
		filter.Sentiment = &s
	}
	if s := c.Query("min_rating"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 || v > 1 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid min_rating", nil)
			return
		}
		filter.MinRating = &v
	}
	if s := c.Query("limit"); s != "" {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil || n < 1 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		filter.Limit = int32(n)
	}

	views, err := h.q.ListForProvider(c.Request.Context(), providerID, filter)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to list reviews")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviews(views))
}

// @Summary Review statistics
// @Description Aggregate over a provider's visible reviews
// @Tags reviews
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} resdto.ReviewStatsResponse
// @Router /providers/{id}/reviews/stats [get]
func (h *ReviewHandler) Stats(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider id", nil)
		return
	}
	stats, err := h.q.Stats(c.Request.Context(), providerID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewStats(stats))
}

// @Summary Report review
// @Description Flag a review for moderation
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.ReportReviewRequest true "Reason"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id}/report [post]
func (h *ReviewHandler) Report(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ReportReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmd.Report(c.Request.Context(), id, req.Reason); err != nil {
		httperr.AbortWithDomainError(c, err, "Report failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete review
// @Description Delete own review (admins can delete any)
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	actorID, role, ok := principal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmd.Delete(c.Request.Context(), actorID, role == actor.RoleAdmin, id); err != nil {
		httperr.AbortWithDomainError(c, err, "Delete failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List reported reviews
// @Description Admin moderation queue
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReportedReviewResponse
// @Router /admin/reviews/reported [get]
func (h *ReviewHandler) ListReported(c *gin.Context) {
	views, err := h.q.ListReported(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to list reported reviews")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReportedReviews(views))
}

// @Summary Set review visibility
// @Description Admin verdict; restoring visibility clears the report
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.SetReviewVisibilityRequest true "Verdict"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /admin/reviews/{id}/visibility [put]
func (h *ReviewHandler) SetVisibility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.SetReviewVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmd.SetVisibility(c.Request.Context(), id, *req.Visible); err != nil {
		httperr.AbortWithDomainError(c, err, "Update failed")
		return
	}
	c.Status(http.StatusNoContent)
}
