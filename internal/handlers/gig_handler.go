package handlers

import (
	"strconv"

	"replink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type GigHandler struct {
	BaseHandler
	gigs *services.GigService
}

func NewGigHandler(base BaseHandler, gigs *services.GigService) *GigHandler {
	return &GigHandler{BaseHandler: base, gigs: gigs}
}

func (h *GigHandler) Create(c *gin.Context) {
	var in services.CreateGigInput
	if !h.BindAndValidateJSON(c, &in) {
		return
	}

	gig, err := h.gigs.CreateGig(c.Request.Context(), h.UserID(c), in)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, gig)
}

// List serves the rep gig feed. lat and lng must come together to narrow the
// feed; either alone is ignored.
func (h *GigHandler) List(c *gin.Context) {
	var lat, lng *float64
	if v, err := strconv.ParseFloat(c.Query("lat"), 64); err == nil {
		lat = &v
	}
	if v, err := strconv.ParseFloat(c.Query("lng"), 64); err == nil {
		lng = &v
	}
	if lat == nil || lng == nil {
		lat, lng = nil, nil
	}

	page := h.Page(c)
	items, total, err := h.gigs.ListGigs(c.Request.Context(), page, lat, lng)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Paginated(c, items, total, page)
}

func (h *GigHandler) Get(c *gin.Context) {
	gig, err := h.gigs.GetGig(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gig)
}

func (h *GigHandler) CompanyGigs(c *gin.Context) {
	page := h.Page(c)
	items, total, err := h.gigs.ListCompanyGigs(c.Request.Context(), h.UserID(c), page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Paginated(c, items, total, page)
}
