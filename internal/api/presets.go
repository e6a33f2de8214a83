package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwantia/resorter/pkg/db/store"
	"github.com/mwantia/resorter/pkg/filter"
)

type PresetHandler struct {
	store store.CandidateStore
}

func NewPresetHandler(s store.CandidateStore) *PresetHandler {
	return &PresetHandler{store: s}
}

type presetRequest struct {
	Description string        `json:"description"`
	Config      filter.Config `json:"config"`
}

func (h *PresetHandler) List(c *gin.Context) {
	presets, err := h.store.ListFilterPresets(c.Request.Context())
	if err != nil {
		Internal(c, "failed to list filter presets")
		return
	}

	out := make([]gin.H, 0, len(presets))
	for _, p := range presets {
		out = append(out, gin.H{
			"name":        p.Name,
			"description": p.Description,
			"updated_at":  p.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"presets": out})
}

func (h *PresetHandler) Get(c *gin.Context) {
	cfg, err := h.store.GetFilterPreset(c.Request.Context(), c.Param("name"))
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, "filter preset not found")
		return
	}
	if err != nil {
		Internal(c, "failed to load filter preset")
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": c.Param("name"), "config": cfg})
}

func (h *PresetHandler) Save(c *gin.Context) {
	var req presetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid filter preset")
		return
	}

	if err := h.store.SaveFilterPreset(c.Request.Context(), c.Param("name"), req.Description, req.Config); err != nil {
		Internal(c, "failed to save filter preset")
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": c.Param("name"), "config": req.Config.Normalize()})
}

func (h *PresetHandler) Delete(c *gin.Context) {
	err := h.store.DeleteFilterPreset(c.Request.Context(), c.Param("name"))
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, "filter preset not found")
		return
	}
	if err != nil {
		Internal(c, "failed to delete filter preset")
		return
	}
	c.Status(http.StatusNoContent)
}
