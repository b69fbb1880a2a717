package handlers

import (
	"replink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	BaseHandler
	companies *services.CompanyService
}

func NewCompanyHandler(base BaseHandler, companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{BaseHandler: base, companies: companies}
}

func (h *CompanyHandler) Register(c *gin.Context) {
	var in services.RegisterInput
	if !h.BindAndValidateJSON(c, &in) {
		return
	}

	result, err := h.companies.Register(c.Request.Context(), in)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, result)
}

func (h *CompanyHandler) Login(c *gin.Context) {
	var in services.LoginInput
	if !h.BindAndValidateJSON(c, &in) {
		return
	}

	result, err := h.companies.Login(c.Request.Context(), in)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, result)
}

func (h *CompanyHandler) Stats(c *gin.Context) {
	stats, err := h.companies.Stats(c.Request.Context(), h.UserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, stats)
}
