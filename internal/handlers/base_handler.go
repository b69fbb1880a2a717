package handlers

import (
	"net/http"
	"strconv"

	"replink_backend/internal/apperrors"
	"replink_backend/internal/middleware"
	"replink_backend/internal/repositories"
	"replink_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the helpers every entity handler embeds.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

// BindAndValidateJSON binds the JSON body into obj and runs validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	if err := h.validator.Validate(obj); err != nil {
		if ve, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(ve.Errors))
		} else {
			apperrors.HandleError(c, err)
		}
		return false
	}
	return true
}

// HandleServiceError writes a service error response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// UserID returns the authenticated principal's ID set by the auth
// middleware.
func (h *BaseHandler) UserID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserID)
}

// Page parses the page query param, defaulting to 1.
func (h *BaseHandler) Page(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// OK writes a 200 data envelope.
func (h *BaseHandler) OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Created writes a 201 data envelope.
func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

// Paginated writes a 200 page envelope with total and totalPages.
func (h *BaseHandler) Paginated(c *gin.Context, data interface{}, total, page int) {
	totalPages := (total + repositories.PageSize - 1) / repositories.PageSize
	c.JSON(http.StatusOK, gin.H{
		"data":       data,
		"total":      total,
		"page":       page,
		"totalPages": totalPages,
	})
}
