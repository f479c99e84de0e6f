package api

import (
	"net/http"
	"strconv"

	reqdto "eventora/internal/handler/dto/request"
	resdto "eventora/internal/handler/dto/response"
	"eventora/internal/handler/httperr"
	"eventora/internal/handler/middleware"
	"eventora/internal/usecase/commands"
	"eventora/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PromotionHandler struct {
	cmd commands.PromotionCommands
	q   queries.PromotionQueryService
}

func NewPromotionHandler(cmd commands.PromotionCommands, q queries.PromotionQueryService) *PromotionHandler {
	return &PromotionHandler{cmd: cmd, q: q}
}

// @Summary Create promotion
// @Description Create an active promotion, subject to the active-promotion quota
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromotionRequest true "Promotion"
// @Success 201 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Router /promotions [post]
func (h *PromotionHandler) Create(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}
	id, err := h.cmd.Create(c.Request.Context(), providerID, input)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Create promotion failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List own promotions
// @Description Owner listing; pass active=true to hide switched-off rows
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active promotions"
// @Success 200 {array} resdto.PromotionResponse
// @Router /promotions [get]
func (h *PromotionHandler) ListOwn(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	activeOnly := c.Query("active") == "true"
	views, err := h.q.ListForProvider(c.Request.Context(), providerID, activeOnly)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to list promotions")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotions(views))
}

// @Summary Update promotion
// @Description Partial update; setting active=false deactivates the promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Param request body reqdto.UpdatePromotionRequest true "Changes"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Router /promotions/{id} [put]
func (h *PromotionHandler) Update(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	promotionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}
	if err := h.cmd.Update(c.Request.Context(), providerID, promotionID, input); err != nil {
		httperr.AbortWithDomainError(c, err, "Update promotion failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete promotion
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /promotions/{id} [delete]
func (h *PromotionHandler) Delete(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	promotionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmd.Delete(c.Request.Context(), providerID, promotionID); err != nil {
		httperr.AbortWithDomainError(c, err, "Delete promotion failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Promotion quota
// @Description Remaining active-promotion slots for the caller
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.QuotaInfoResponse
// @Router /promotions/quota [get]
func (h *PromotionHandler) Quota(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	info, err := h.q.Quota(c.Request.Context(), providerID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load quota")
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuotaInfo(info))
}

// @Summary List provider promotions
// @Description Public listing of a provider's promotions currently in their window
// @Tags promotions
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {array} resdto.PromotionResponse
// @Router /providers/{id}/promotions [get]
func (h *PromotionHandler) ListCurrent(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider id", nil)
		return
	}
	views, err := h.q.ListCurrent(c.Request.Context(), providerID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to list promotions")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotions(views))
}

// @Summary Get promotion
// @Tags promotions
// @Produce json
// @Param id path string true "Promotion ID"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 404 {object} httperr.Response
// @Router /promotions/{id} [get]
func (h *PromotionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load promotion")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotion(view))
}

// @Summary Search active promotions
// @Description Public cross-provider search over promotions currently in their window
// @Tags promotions
// @Produce json
// @Param max_price query number false "Maximum promotional price"
// @Param min_discount query int false "Minimum discount percentage"
// @Param limit query int false "Max rows"
// @Success 200 {array} resdto.PromotionResponse
// @Router /promotions/search [get]
func (h *PromotionHandler) Search(c *gin.Context) {
	var filter queries.PromotionSearchFilter
	if s := c.Query("max_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid max_price", nil)
			return
		}
		filter.MaxPrice = &v
	}
	if s := c.Query("min_discount"); s != "" {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil || n < 0 || n > 100 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid min_discount", nil)
			return
		}
		v := int32(n)
		filter.MinDiscount = &v
	}
	if s := c.Query("limit"); s != "" {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil || n < 1 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		filter.Limit = int32(n)
	}
	views, err := h.q.SearchActive(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Search failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotions(views))
}
