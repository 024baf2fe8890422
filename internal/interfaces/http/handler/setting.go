package handler

import (
	"github.com/gin-gonic/gin"

	sitecontentapp "github.com/shopcore/backend/internal/application/sitecontent"
)

// SettingHandler handles site settings endpoints
type SettingHandler struct {
	BaseHandler
	settingService *sitecontentapp.SettingService
}

// NewSettingHandler creates a new SettingHandler
func NewSettingHandler(settingService *sitecontentapp.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// List handles GET /api/admin/settings
func (h *SettingHandler) List(c *gin.Context) {
	settings, err := h.settingService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, settings)
}

// Create handles POST /api/admin/settings
func (h *SettingHandler) Create(c *gin.Context) {
	var req sitecontentapp.CreateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.settingService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Update handles PUT /api/admin/settings/:id
func (h *SettingHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid setting ID")
		return
	}

	var req sitecontentapp.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.settingService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /api/admin/settings/:id
func (h *SettingHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid setting ID")
		return
	}

	if err := h.settingService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
