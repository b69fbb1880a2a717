package handlers

import (
	"mime/multipart"

	"replink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type RepHandler struct {
	BaseHandler
	reps *services.RepService
}

func NewRepHandler(base BaseHandler, reps *services.RepService) *RepHandler {
	return &RepHandler{BaseHandler: base, reps: reps}
}

func (h *RepHandler) Register(c *gin.Context) {
	var in services.RegisterInput
	if !h.BindAndValidateJSON(c, &in) {
		return
	}

	result, err := h.reps.Register(c.Request.Context(), in)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, result)
}

func (h *RepHandler) Login(c *gin.Context) {
	var in services.LoginInput
	if !h.BindAndValidateJSON(c, &in) {
		return
	}

	result, err := h.reps.Login(c.Request.Context(), in)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, result)
}

func (h *RepHandler) Me(c *gin.Context) {
	rep, err := h.reps.GetByID(c.Request.Context(), h.UserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, rep)
}

func (h *RepHandler) GetByID(c *gin.Context) {
	rep, err := h.reps.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, rep)
}

// Update handles the multipart profile update. The avatar file part is
// optional.
func (h *RepHandler) Update(c *gin.Context) {
	in := services.UpdateProfileInput{
		Name:    c.PostForm("name"),
		PhoneNo: c.PostForm("phoneNo"),
		Bio:     c.PostForm("bio"),
	}
	if !h.validate(c, &in) {
		return
	}

	file, header, err := c.Request.FormFile("avatar")
	if err == nil {
		defer file.Close()
		in.Avatar = file
		in.AvatarName = header.Filename
		in.AvatarContentType = contentType(header)
	}

	rep, err := h.reps.UpdateProfile(c.Request.Context(), h.UserID(c), in)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, rep)
}

type passInput struct {
	RepID string `json:"repId" validate:"required,uuid"`
}

func (h *RepHandler) Pass(c *gin.Context) {
	var in passInput
	if !h.BindAndValidateJSON(c, &in) {
		return
	}

	rep, err := h.reps.Pass(c.Request.Context(), in.RepID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, rep)
}

type rateInput struct {
	RepID  string  `json:"repId" validate:"required,uuid"`
	Rating float64 `json:"rating" validate:"required,gte=1,lte=5"`
}

func (h *RepHandler) Rate(c *gin.Context) {
	var in rateInput
	if !h.BindAndValidateJSON(c, &in) {
		return
	}

	rating, err := h.reps.Rate(c.Request.Context(), in.RepID, services.RateInput{Rating: in.Rating})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, rating)
}

type fraudInput struct {
	RepID   string `json:"repId" validate:"required,uuid"`
	IsFraud *bool  `json:"isFraud" validate:"required"`
}

func (h *RepHandler) Fraud(c *gin.Context) {
	var in fraudInput
	if !h.BindAndValidateJSON(c, &in) {
		return
	}

	rep, err := h.reps.SetFraud(c.Request.Context(), in.RepID, *in.IsFraud)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, rep)
}

func contentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
