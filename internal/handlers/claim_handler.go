package handlers

import (
	"net/http"

	"bcpartners_backend/internal/logger"
	"bcpartners_backend/internal/services"
	"bcpartners_backend/internal/services/dto"
	"bcpartners_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ClaimHandler struct {
	BaseHandler
	claimService services.ClaimService
}

func NewClaimHandler(base BaseHandler, claimService services.ClaimService) *ClaimHandler {
	return &ClaimHandler{
		BaseHandler:  base,
		claimService: claimService,
	}
}

// RegisterRoutes mounts the public submission endpoint.
func (h *ClaimHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/listings/:slug/claims", h.SubmitClaim)
}

// RegisterAdminRoutes mounts the claim queue endpoints.
func (h *ClaimHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	claims := rg.Group("/claims")
	{
		claims.GET("/pending", h.GetPending)
		claims.PATCH("/:id/reviewed", h.MarkReviewed)
		claims.GET("/:id/reply", h.GetReply)
	}
}

// SubmitClaim godoc
// @Summary Submit an ownership claim for a listing
// @Description Anonymous submission. Claims always enter the queue as pending.
// @Tags claims
// @Accept json
// @Produce json
// @Param slug path string true "Listing slug"
// @Param request body dto.CreateClaimRequest true "Claim"
// @Success 201 {object} dto.ClaimResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /listings/{slug}/claims [post]
func (h *ClaimHandler) SubmitClaim(c *gin.Context) {
	slug := c.Param("slug")

	var req dto.CreateClaimRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.claimService.SubmitClaim(h.GetDB(c), slug, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetPending godoc
// @Summary List the pending claim queue
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ClaimQueueResponse
// @Router /admin/claims/pending [get]
func (h *ClaimHandler) GetPending(c *gin.Context) {
	resp, err := h.claimService.GetPendingClaims(h.GetDB(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MarkReviewed godoc
// @Summary Dismiss a claim from the queue
// @Description The claim is retained with status=reviewed, not deleted.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Claim ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/claims/{id}/reviewed [patch]
func (h *ClaimHandler) MarkReviewed(c *gin.Context) {
	id := c.Param("id")

	if err := h.claimService.MarkReviewed(h.GetDB(c), id); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	logger.CtxInfo(c.Request.Context(), "Claim dismissed from queue", "claim_id", id)
	c.JSON(http.StatusOK, gin.H{"status": "reviewed"})
}

// GetReply godoc
// @Summary Build a prefilled reply link for a claim
// @Description Returns a mailto: URL addressed to the claimant so the operator can reply from their own mail client.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Claim ID"
// @Success 200 {object} dto.ClaimReplyResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /admin/claims/{id}/reply [get]
func (h *ClaimHandler) GetReply(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.claimService.BuildReply(h.GetDB(c), id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
