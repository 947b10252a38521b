package handlers

import (
	"net/http"

	"bcpartners_backend/internal/logger"
	"bcpartners_backend/internal/services"
	"bcpartners_backend/internal/services/dto"
	"bcpartners_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

// RegisterRoutes mounts the public submission endpoint.
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/listings/:slug/reviews", h.SubmitReview)
}

// RegisterAdminRoutes mounts the moderation queue endpoints.
func (h *ReviewHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/reviews")
	{
		reviews.GET("/pending", h.GetPending)
		reviews.PATCH("/:id/approve", h.Approve)
		reviews.DELETE("/:id", h.Reject)
	}
}

// SubmitReview godoc
// @Summary Submit a review for a listing
// @Description Anonymous submission. The review always enters the queue as pending; a status in the body is ignored.
// @Tags reviews
// @Accept json
// @Produce json
// @Param slug path string true "Listing slug"
// @Param request body dto.CreateReviewRequest true "Review"
// @Success 201 {object} dto.ReviewResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /listings/{slug}/reviews [post]
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	slug := c.Param("slug")

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.reviewService.SubmitReview(h.GetDB(c), slug, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetPending godoc
// @Summary List the pending review queue
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ReviewQueueResponse
// @Router /admin/reviews/pending [get]
func (h *ReviewHandler) GetPending(c *gin.Context) {
	resp, err := h.reviewService.GetPendingReviews(h.GetDB(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Approve godoc
// @Summary Approve a pending review
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/reviews/{id}/approve [patch]
func (h *ReviewHandler) Approve(c *gin.Context) {
	id := c.Param("id")

	if err := h.reviewService.ApproveReview(h.GetDB(c), id); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	logger.CtxInfo(c.Request.Context(), "Review approved", "review_id", id)
	c.JSON(http.StatusOK, gin.H{"status": "approved"})
}

// Reject godoc
// @Summary Reject a review
// @Description Rejection removes the record permanently.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/reviews/{id} [delete]
func (h *ReviewHandler) Reject(c *gin.Context) {
	id := c.Param("id")

	if err := h.reviewService.RejectReview(h.GetDB(c), id); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	logger.CtxInfo(c.Request.Context(), "Review rejected and removed", "review_id", id)
	c.JSON(http.StatusOK, gin.H{"status": "rejected"})
}
