package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/omarFareed23/recipe-api/internal/application"
	"github.com/omarFareed23/recipe-api/internal/interface/middleware"
	"github.com/omarFareed23/recipe-api/pkg/response"
	"github.com/omarFareed23/recipe-api/pkg/validation"
)

type TagHandler struct {
	Svc    *app.TagService
	Logger *logrus.Logger
}

func NewTagHandler(svc *app.TagService, logger *logrus.Logger) *TagHandler {
	return &TagHandler{Svc: svc, Logger: logger}
}

type createTagRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type updateTagRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
}

// List handles GET /api/tags, descending by name, caller's rows only.
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.Svc.List(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		h.Logger.WithError(err).Error("list tags failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to list tags", nil)
		return
	}
	views := make([]tagView, 0, len(tags))
	for _, t := range tags {
		views = append(views, tagView{ID: t.ID, Name: t.Name})
	}
	response.Success(c, http.StatusOK, views, "tags", map[string]any{"count": len(views)})
}

// Create handles POST /api/tags. The owner is always the caller.
func (h *TagHandler) Create(c *gin.Context) {
	var req createTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), middleware.CallerID(c), req.Name)
	if err != nil {
		h.respondErr(c, err, "create tag failed")
		return
	}
	response.Success(c, http.StatusCreated, tagView{ID: t.ID, Name: t.Name}, "tag created", nil)
}

// Get handles GET /api/tags/:id.
func (h *TagHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	t, err := h.Svc.Get(c.Request.Context(), id, middleware.CallerID(c))
	if err != nil {
		h.respondErr(c, err, "get tag failed")
		return
	}
	response.Success(c, http.StatusOK, tagView{ID: t.ID, Name: t.Name}, "tag", nil)
}

// Update handles PUT and PATCH /api/tags/:id.
func (h *TagHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.Update(c.Request.Context(), id, middleware.CallerID(c), app.UpdateTagInput{Name: req.Name})
	if err != nil {
		h.respondErr(c, err, "update tag failed")
		return
	}
	response.Success(c, http.StatusOK, tagView{ID: t.ID, Name: t.Name}, "tag updated", nil)
}

// Delete handles DELETE /api/tags/:id and answers 204 on success.
func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id, middleware.CallerID(c)); err != nil {
		h.respondErr(c, err, "delete tag failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TagHandler) respondErr(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, app.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, app.ErrDuplicateTag):
		response.Error[any](c, http.StatusBadRequest, err.Error(), map[string]string{"name": err.Error()})
	default:
		h.Logger.WithError(err).Error(logMsg)
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
