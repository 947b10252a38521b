package handlers

import (
	"bcpartners_backend/internal/logger"
	"bcpartners_backend/internal/validator"
	"bcpartners_backend/pkg/apperrors"
	"bcpartners_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler carries the pieces every handler needs.
type BaseHandler struct {
	Validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{Validator: v}
}

// GetDB pulls the database handle the middleware placed into the context.
// A missing handle is a wiring bug, not a runtime condition.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	val, exists := c.Get(string(contextkeys.DBContextKey))
	if !exists {
		panic("database handle missing from context, is DBMiddleware registered?")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		panic("database handle in context has wrong type")
	}
	return db
}

// BindAndValidateJSON binds the request body and runs struct validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}

	if err := h.Validator.Validate(req); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxDebug(c.Request.Context(), "Request validation failed", "fields", vErr.Errors)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}
