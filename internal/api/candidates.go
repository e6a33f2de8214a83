package api

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/mwantia/resorter/internal/session"
	"github.com/mwantia/resorter/pkg/db/store"
	"github.com/mwantia/resorter/pkg/extract"
	"github.com/mwantia/resorter/pkg/filter"
	"github.com/mwantia/resorter/pkg/log"
	"github.com/mwantia/resorter/pkg/render"
)

type CandidateHandler struct {
	controller *session.Controller
	store      store.CandidateStore
	log        log.LoggerService
}

func NewCandidateHandler(controller *session.Controller, s store.CandidateStore, logger log.LoggerService) *CandidateHandler {
	return &CandidateHandler{
		controller: controller,
		store:      s,
		log:        logger,
	}
}

type intakeRequest struct {
	Paths []string `json:"paths" binding:"required,min=1"`
}

// List returns the loaded collection without touching the store
func (h *CandidateHandler) List(c *gin.Context) {
	state := h.controller.State()
	c.JSON(http.StatusOK, gin.H{
		"phase":      state.Phase,
		"candidates": state.Candidates,
		"cards":      render.Cards(state.Candidates),
	})
}

func (h *CandidateHandler) Refresh(c *gin.Context) {
	h.respond(c, h.controller.Dispatch(c.Request.Context(), session.Refresh{}))
}

// Filter accepts a filter configuration as JSON body or a stored preset by ?preset=<name>
func (h *CandidateHandler) Filter(c *gin.Context) {
	var cfg filter.Config

	if name := c.Query("preset"); name != "" {
		preset, err := h.store.GetFilterPreset(c.Request.Context(), name)
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "filter preset not found")
			return
		}
		if err != nil {
			Internal(c, "failed to load filter preset")
			return
		}
		cfg = preset
	} else if err := c.ShouldBindJSON(&cfg); err != nil && !errors.Is(err, io.EOF) {
		BadRequest(c, "invalid filter configuration")
		return
	}

	h.respond(c, h.controller.Dispatch(c.Request.Context(), session.ApplyFilter{Config: cfg}))
}

func (h *CandidateHandler) Intake(c *gin.Context) {
	var req intakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "paths are required")
		return
	}

	h.respond(c, h.controller.Dispatch(c.Request.Context(), session.LoadDocuments{Paths: req.Paths}))
}

// Upload stores multipart "files" in a scratch directory and runs them through intake
func (h *CandidateHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		BadRequest(c, "no files uploaded")
		return
	}

	scratch, err := os.MkdirTemp("", "resorter-upload-")
	if err != nil {
		Internal(c, "failed to prepare upload")
		return
	}
	defer os.RemoveAll(scratch)

	paths := make([]string, 0, len(form.File["files"]))
	for _, file := range form.File["files"] {
		name := filepath.Base(file.Filename)
		if !extract.Supported(name) {
			BadRequest(c, "unsupported document type: "+name)
			return
		}

		path := filepath.Join(scratch, name)
		if err := c.SaveUploadedFile(file, path); err != nil {
			h.log.Warn("Unable to save upload '%s': %v", name, err)
			Internal(c, "failed to save upload")
			return
		}
		paths = append(paths, path)
	}

	h.respond(c, h.controller.Dispatch(c.Request.Context(), session.LoadDocuments{Paths: paths}))
}

func (h *CandidateHandler) Sort(c *gin.Context) {
	h.respond(c, h.controller.Dispatch(c.Request.Context(), session.SortFiles{}))
}

// respond writes the render as JSON, or as HTML cards with ?format=html
func (h *CandidateHandler) respond(c *gin.Context, r session.Render) {
	if c.Query("format") == "html" {
		c.Status(http.StatusOK)
		c.Header("Content-Type", "text/html; charset=utf-8")
		if err := render.WriteHTML(c.Writer, r.Cards); err != nil {
			h.log.Error("Unable to render cards: %v", err)
		}
		return
	}

	c.JSON(http.StatusOK, r)
}
