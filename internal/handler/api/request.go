package api

import (
	"net/http"
	"strconv"

	"eventora/internal/domain/actor"
	"eventora/internal/domain/request"
	reqdto "eventora/internal/handler/dto/request"
	resdto "eventora/internal/handler/dto/response"
	"eventora/internal/handler/httperr"
	"eventora/internal/handler/middleware"
	"eventora/internal/usecase/commands"
	"eventora/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestHandler struct {
	cmd commands.RequestCommands
	q   queries.RequestQueryService
}

func NewRequestHandler(cmd commands.RequestCommands, q queries.RequestQueryService) *RequestHandler {
	return &RequestHandler{cmd: cmd, q: q}
}

// @Summary Create service request
// @Description Send a request to a provider for an event date
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Create request"
// @Success 201 {object} resdto.RequestDetailResponse
// @Failure 400 {object} httperr.Response
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}
	id, err := h.cmd.Create(c.Request.Context(), clientID, input)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Create request failed")
		return
	}
	detail, err := h.q.GetDetail(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load request", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestDetail(detail))
}

// @Summary List own requests
// @Description List requests on the caller's side of the marketplace
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by state"
// @Param limit query int false "Max rows"
// @Success 200 {array} resdto.RequestListItemResponse
// @Router /requests [get]
func (h *RequestHandler) List(c *gin.Context) {
	actorID, role, ok := principal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var filter queries.RequestFilter
	if s := c.Query("status"); s != "" {
		if _, err := request.NewStatus(s); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
			return
		}
		filter.Status = &s
	}
	if s := c.Query("limit"); s != "" {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil || n < 1 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		filter.Limit = int32(n)
	}

	items, err := h.q.ListForActor(c.Request.Context(), actorID, role, filter)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to list requests")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestList(items))
}

// @Summary Request statistics
// @Description Lifecycle breakdown of the caller's requests
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RequestStatsResponse
// @Router /requests/stats [get]
func (h *RequestHandler) Stats(c *gin.Context) {
	actorID, role, ok := principal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	stats, err := h.q.Stats(c.Request.Context(), actorID, role)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestStats(stats))
}

// @Summary Get request
// @Description Request detail; only the two parties may read it
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestDetailResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
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
	detail, err := h.q.GetDetail(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Request not found")
		return
	}
	if !isPartyOrAdmin(detail, actorID, role) {
		httperr.AbortWithError(c, http.StatusForbidden, nil, "Not a party to this request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestDetail(detail))
}

// @Summary Respond to request
// @Description Provider answers a pending request with a proposal
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.RespondRequest true "Proposal"
// @Success 200 {object} resdto.RequestDetailResponse
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/respond [put]
func (h *RequestHandler) Respond(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}
	if err := h.cmd.Respond(c.Request.Context(), providerID, id, input); err != nil {
		httperr.AbortWithDomainError(c, err, "Respond failed")
		return
	}
	h.renderDetail(c, id)
}

// @Summary Accept request
// @Description Client accepts a proposal; the event date is booked atomically
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestDetailResponse
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/accept [put]
func (h *RequestHandler) Accept(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmd.Accept(c.Request.Context(), clientID, id); err != nil {
		httperr.AbortWithDomainError(c, err, "Accept failed")
		return
	}
	h.renderDetail(c, id)
}

// @Summary Reject request
// @Description Either party declines from Pendiente or Respondida
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestDetailResponse
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/reject [put]
func (h *RequestHandler) Reject(c *gin.Context) {
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
	if err := h.cmd.Reject(c.Request.Context(), actorID, role == actor.RoleProvider, id); err != nil {
		httperr.AbortWithDomainError(c, err, "Reject failed")
		return
	}
	h.renderDetail(c, id)
}

// @Summary Cancel request
// @Description Client withdraws a still-pending request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestDetailResponse
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/cancel [put]
func (h *RequestHandler) Cancel(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmd.Cancel(c.Request.Context(), clientID, id); err != nil {
		httperr.AbortWithDomainError(c, err, "Cancel failed")
		return
	}
	h.renderDetail(c, id)
}

func (h *RequestHandler) renderDetail(c *gin.Context, id uuid.UUID) {
	detail, err := h.q.GetDetail(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestDetail(detail))
}

func principal(c *gin.Context) (uuid.UUID, actor.Role, bool) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return uuid.Nil, "", false
	}
	return actorID, role, true
}

func isPartyOrAdmin(detail *queries.RequestDetail, actorID uuid.UUID, role actor.Role) bool {
	if role == actor.RoleAdmin {
		return true
	}
	return detail.ClientID == actorID || detail.ProviderID == actorID
}
