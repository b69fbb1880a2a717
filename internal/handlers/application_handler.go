package handlers

import (
	"replink_backend/internal/models"
	"replink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	BaseHandler
	applications *services.ApplicationService
}

func NewApplicationHandler(base BaseHandler, applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applications: applications}
}

type submitInput struct {
	GigID string `json:"gigId" validate:"required,uuid"`
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	var in submitInput
	if !h.BindAndValidateJSON(c, &in) {
		return
	}

	app, err := h.applications.Submit(c.Request.Context(), h.UserID(c), in.GigID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, app)
}

// GetOwn returns the rep's application for the gig in the path.
func (h *ApplicationHandler) GetOwn(c *gin.Context) {
	app, err := h.applications.GetForRep(c.Request.Context(), h.UserID(c), c.Param("gigId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, app)
}

type decideInput struct {
	ApplicationID string `json:"applicationId" validate:"required,uuid"`
	Status        string `json:"status" validate:"required,is-application-decision"`
}

func (h *ApplicationHandler) Decide(c *gin.Context) {
	var in decideInput
	if !h.BindAndValidateJSON(c, &in) {
		return
	}

	app, err := h.applications.Decide(
		c.Request.Context(),
		h.UserID(c),
		in.ApplicationID,
		models.ApplicationStatus(in.Status),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, app)
}

func (h *ApplicationHandler) CompanyList(c *gin.Context) {
	page := h.Page(c)
	items, total, err := h.applications.ListForCompany(c.Request.Context(), h.UserID(c), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Paginated(c, items, total, page)
}

func (h *ApplicationHandler) CompanyListByGig(c *gin.Context) {
	page := h.Page(c)
	items, total, err := h.applications.ListForGig(c.Request.Context(), h.UserID(c), c.Param("id"), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Paginated(c, items, total, page)
}

func (h *ApplicationHandler) RepList(c *gin.Context) {
	items, err := h.applications.ListForRep(c.Request.Context(), h.UserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, items)
}

func (h *ApplicationHandler) RepAccepted(c *gin.Context) {
	items, err := h.applications.ListAcceptedForRep(c.Request.Context(), h.UserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, items)
}
