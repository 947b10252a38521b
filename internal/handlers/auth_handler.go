package handlers

import (
	"net/http"

	"bcpartners_backend/internal/middleware"
	"bcpartners_backend/internal/models"
	"bcpartners_backend/internal/services"
	"bcpartners_backend/internal/services/dto"
	"bcpartners_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)

		// JSON-API session check: answers 401, unlike the redirecting
		// moderation gate.
		session := auth.Group("")
		session.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
		session.GET("/me", h.Me)
	}
}

// Login godoc
// @Summary Operator login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Current operator session
// @Description Session check for the moderation frontend. Unlike the admin surface this answers 401 JSON, so a client can tell a dead session from a missing endpoint.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OperatorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	resp, err := h.authService.Me(h.GetDB(c), middleware.GetUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
