package api

import (
	"net/http"
	"time"

	"eventora/internal/domain/calendar"
	reqdto "eventora/internal/handler/dto/request"
	resdto "eventora/internal/handler/dto/response"
	"eventora/internal/handler/httperr"
	"eventora/internal/handler/middleware"
	"eventora/internal/pkg/clock"
	"eventora/internal/usecase/commands"
	"eventora/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CalendarHandler struct {
	cmd commands.CalendarCommands
	q   queries.CalendarQueryService
	clk clock.Clock
}

func NewCalendarHandler(cmd commands.CalendarCommands, q queries.CalendarQueryService, clk clock.Clock) *CalendarHandler {
	return &CalendarHandler{cmd: cmd, q: q, clk: clk}
}

// @Summary Block dates
// @Description Mark one or more days unavailable on the caller's calendar
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BlockDatesRequest true "Dates to block"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /calendar/block [post]
func (h *CalendarHandler) Block(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.BlockDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	dates, err := reqdto.ParseDates(req.Dates)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}
	if err := h.cmd.BlockMany(c.Request.Context(), providerID, dates, req.Reason); err != nil {
		httperr.AbortWithDomainError(c, err, "Block failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Unblock dates
// @Description Return one or more days to the open default
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UnblockDatesRequest true "Dates to unblock"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /calendar/unblock [post]
func (h *CalendarHandler) Unblock(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.UnblockDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	dates, err := reqdto.ParseDates(req.Dates)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}
	if err := h.cmd.UnblockMany(c.Request.Context(), providerID, dates); err != nil {
		httperr.AbortWithDomainError(c, err, "Unblock failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete a calendar entry
// @Description Remove a marked day entirely; days held by a booking are kept
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /calendar/{date} [delete]
func (h *CalendarHandler) DeleteDate(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	date, err := reqdto.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}
	if err := h.cmd.DeleteDate(c.Request.Context(), providerID, date); err != nil {
		httperr.AbortWithDomainError(c, err, "Delete failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List own calendar entries
// @Description List the caller's marked days with booking context
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param available query bool false "Filter by availability"
// @Success 200 {array} resdto.CalendarEntryResponse
// @Router /calendar [get]
func (h *CalendarHandler) List(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	filter, err := h.parseListFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	entries, err := h.q.ListEntries(c.Request.Context(), providerID, filter)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to list calendar")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarEntries(entries))
}

// @Summary Calendar statistics
// @Description Summarize the caller's calendar over a date range
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} resdto.CalendarStatsResponse
// @Router /calendar/stats [get]
func (h *CalendarHandler) Stats(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	from, to, err := h.parseRange(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	stats, err := h.q.Stats(c.Request.Context(), providerID, from, to)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarStats(stats))
}

// @Summary Public availability
// @Description One row per day of the range; days without an entry are open
// @Tags calendar
// @Produce json
// @Param id path string true "Provider ID"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} resdto.AvailabilityDayResponse
// @Router /providers/{id}/availability [get]
func (h *CalendarHandler) PublicAvailability(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider id", nil)
		return
	}
	from, to, err := h.parseRange(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	// Past days are never part of the public view.
	if today := calendar.Day(h.clk.Now()); from.Before(today) {
		from = today
	}
	days, err := h.q.PublicAvailability(c.Request.Context(), providerID, from, to)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load availability")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(days))
}

// parseRange defaults to the 30 days starting today.
func (h *CalendarHandler) parseRange(c *gin.Context) (time.Time, time.Time, error) {
	now := h.clk.Now()
	from, to := now, now.AddDate(0, 0, 29)

	if s := c.Query("from"); s != "" {
		d, err := reqdto.ParseDate(s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = d
		to = d.AddDate(0, 0, 29)
	}
	if s := c.Query("to"); s != "" {
		d, err := reqdto.ParseDate(s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = d
	}
	return from, to, nil
}

func (h *CalendarHandler) parseListFilter(c *gin.Context) (queries.CalendarListFilter, error) {
	from, to, err := h.parseRange(c)
	if err != nil {
		return queries.CalendarListFilter{}, err
	}
	filter := queries.CalendarListFilter{From: from, To: to}
	switch c.Query("available") {
	case "true":
		v := true
		filter.Available = &v
	case "false":
		v := false
		filter.Available = &v
	}
	return filter, nil
}
