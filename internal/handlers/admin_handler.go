package handlers

import (
	"replink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	BaseHandler
	admins   *services.AdminService
	activity *services.ActivityService
}

func NewAdminHandler(base BaseHandler, admins *services.AdminService, activity *services.ActivityService) *AdminHandler {
	return &AdminHandler{BaseHandler: base, admins: admins, activity: activity}
}

func (h *AdminHandler) Create(c *gin.Context) {
	var in services.RegisterInput
	if !h.BindAndValidateJSON(c, &in) {
		return
	}

	result, err := h.admins.Register(c.Request.Context(), in)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, result)
}

func (h *AdminHandler) Login(c *gin.Context) {
	var in services.LoginInput
	if !h.BindAndValidateJSON(c, &in) {
		return
	}

	result, err := h.admins.Login(c.Request.Context(), in)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, result)
}

// Activity serves the paginated suspicious-activity feed.
func (h *AdminHandler) Activity(c *gin.Context) {
	page := h.Page(c)
	items, total, err := h.activity.ListActivity(c.Request.Context(), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Paginated(c, items, total, page)
}
