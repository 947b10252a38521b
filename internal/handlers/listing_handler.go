package handlers

import (
	"net/http"

	"bcpartners_backend/internal/logger"
	"bcpartners_backend/internal/services"
	"bcpartners_backend/internal/services/dto"
	"bcpartners_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	BaseHandler
	listingService services.ListingService
}

func NewListingHandler(base BaseHandler, listingService services.ListingService) *ListingHandler {
	return &ListingHandler{
		BaseHandler:    base,
		listingService: listingService,
	}
}

// RegisterRoutes mounts the public directory endpoints.
func (h *ListingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	listings := rg.Group("/listings")
	{
		listings.GET("", h.GetDirectory)
		listings.GET("/tags", h.GetTags)
		listings.GET("/:slug", h.GetBySlug)
	}
}

// RegisterAdminRoutes mounts the moderation-surface endpoints. The caller
// attaches the gate middleware to rg.
func (h *ListingHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/listings/:id", h.UpdateListing)
}

// GetDirectory godoc
// @Summary Browse the partner directory
// @Description Returns all listings, optionally narrowed by a search query and a service tag. Both filters apply together.
// @Tags listings
// @Produce json
// @Param query query string false "Case-insensitive search over name, description and type"
// @Param tag query string false "Service tag; empty or 'All' disables the tag filter"
// @Success 200 {object} dto.DirectoryResponse
// @Router /listings [get]
func (h *ListingHandler) GetDirectory(c *gin.Context) {
	query := c.Query("query")
	tag := c.Query("tag")

	resp, err := h.listingService.GetDirectory(h.GetDB(c), query, tag)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTags godoc
// @Summary List the service tags in use
// @Tags listings
// @Produce json
// @Success 200 {array} string
// @Router /listings/tags [get]
func (h *ListingHandler) GetTags(c *gin.Context) {
	tags, err := h.listingService.GetTags(h.GetDB(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// GetBySlug godoc
// @Summary Fetch one listing with its approved reviews
// @Tags listings
// @Produce json
// @Param slug path string true "Listing slug"
// @Success 200 {object} dto.ListingDetailResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /listings/{slug} [get]
func (h *ListingHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	resp, err := h.listingService.GetBySlug(h.GetDB(c), slug)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateListing godoc
// @Summary Edit a listing inline
// @Description Partial update; only the supplied fields change. A tier change also rewrites the ranking priority.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body dto.UpdateListingRequest true "Fields to update"
// @Success 200 {object} dto.ListingCardResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/listings/{id} [patch]
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateListingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.listingService.UpdateListing(h.GetDB(c), id, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	logger.CtxInfo(c.Request.Context(), "Listing updated", "listing_id", id)
	c.JSON(http.StatusOK, resp)
}
