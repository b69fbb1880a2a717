package handlers

import (
	"strconv"

	"replink_backend/internal/apperrors"
	"replink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	BaseHandler
	reports *services.ReportService
}

func NewReportHandler(base BaseHandler, reports *services.ReportService) *ReportHandler {
	return &ReportHandler{BaseHandler: base, reports: reports}
}

// Create files a multipart field report: gigId, reason, latitude, longitude
// and an image part. A missing image is rejected by the service.
func (h *ReportHandler) Create(c *gin.Context) {
	in := services.CreateReportInput{
		GigID:  c.PostForm("gigId"),
		Reason: c.PostForm("reason"),
	}
	if in.GigID == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("gigId is required"))
		return
	}

	lat, latErr := strconv.ParseFloat(c.PostForm("latitude"), 64)
	lng, lngErr := strconv.ParseFloat(c.PostForm("longitude"), 64)
	if latErr != nil || lngErr != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("latitude and longitude are required"))
		return
	}
	in.Latitude = lat
	in.Longitude = lng

	file, header, err := c.Request.FormFile("image")
	if err == nil {
		defer file.Close()
		in.Image = file
		in.ImageName = header.Filename
		in.ImageContentType = contentType(header)
	}

	report, err := h.reports.Create(c.Request.Context(), h.UserID(c), in)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, report)
}

func (h *ReportHandler) CompanyReports(c *gin.Context) {
	items, err := h.reports.ListForCompany(c.Request.Context(), h.UserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, items)
}

func (h *ReportHandler) GigReports(c *gin.Context) {
	items, err := h.reports.ListForGig(c.Request.Context(), h.UserID(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, items)
}

func (h *ReportHandler) RepGigReports(c *gin.Context) {
	items, err := h.reports.ListForRepGig(c.Request.Context(), h.UserID(c), c.Param("gigId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, items)
}
