package api

import (
	"net/http"

	reqdto "eventora/internal/handler/dto/request"
	resdto "eventora/internal/handler/dto/response"
	"eventora/internal/handler/httperr"
	"eventora/internal/handler/middleware"
	"eventora/internal/usecase/commands"
	"eventora/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GalleryHandler struct {
	cmd commands.GalleryCommands
	q   queries.GalleryQueryService
}

func NewGalleryHandler(cmd commands.GalleryCommands, q queries.GalleryQueryService) *GalleryHandler {
	return &GalleryHandler{cmd: cmd, q: q}
}

// @Summary Add gallery photo
// @Description Add a photo to the caller's gallery, subject to the gallery quota
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddPhotoRequest true "Photo"
// @Success 201 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Router /gallery [post]
func (h *GalleryHandler) AddPhoto(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.AddPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmd.AddPhoto(c.Request.Context(), providerID, commands.AddPhotoInput{
		URL:         req.URL,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Add photo failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List provider gallery
// @Description Public photo listing in display order
// @Tags gallery
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {array} resdto.PhotoResponse
// @Router /providers/{id}/gallery [get]
func (h *GalleryHandler) List(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider id", nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), providerID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to list photos")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPhotos(views))
}

// @Summary Update gallery photo
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Photo ID"
// @Param request body reqdto.UpdatePhotoRequest true "Changes"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Router /gallery/{id} [put]
func (h *GalleryHandler) UpdatePhoto(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	err = h.cmd.UpdatePhoto(c.Request.Context(), providerID, photoID, commands.UpdatePhotoInput{
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Update photo failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete gallery photo
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Photo ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /gallery/{id} [delete]
func (h *GalleryHandler) DeletePhoto(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmd.DeletePhoto(c.Request.Context(), providerID, photoID); err != nil {
		httperr.AbortWithDomainError(c, err, "Delete photo failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reorder gallery
// @Description Apply new display positions to the caller's photos in one batch
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReorderGalleryRequest true "New order"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /gallery/reorder [put]
func (h *GalleryHandler) Reorder(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ReorderGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmd.Reorder(c.Request.Context(), providerID, req.ToItems()); err != nil {
		httperr.AbortWithDomainError(c, err, "Reorder failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Gallery quota
// @Description Remaining photo slots for the caller
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.QuotaInfoResponse
// @Router /gallery/quota [get]
func (h *GalleryHandler) Quota(c *gin.Context) {
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
