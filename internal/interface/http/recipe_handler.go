package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	app "github.com/omarFareed23/recipe-api/internal/application"
	"github.com/omarFareed23/recipe-api/internal/domain/entity"
	"github.com/omarFareed23/recipe-api/internal/interface/middleware"
	"github.com/omarFareed23/recipe-api/pkg/response"
	"github.com/omarFareed23/recipe-api/pkg/validation"
)

type RecipeHandler struct {
	Svc    *app.RecipeService
	Logger *logrus.Logger
}

func NewRecipeHandler(svc *app.RecipeService, logger *logrus.Logger) *RecipeHandler {
	return &RecipeHandler{Svc: svc, Logger: logger}
}

// Numeric fields are pointers so that a literal zero still counts as present.
type createRecipeRequest struct {
	Title       string           `json:"title" binding:"required,max=255"`
	TimeMinutes *int             `json:"time_minutes" binding:"required,gte=0"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Link        string           `json:"link" binding:"omitempty,max=255"`
	Description string           `json:"description" binding:"required"`
	TagIDs      []int64          `json:"tags"`
}

type updateRecipeRequest struct {
	Title       *string          `json:"title" binding:"omitempty,max=255"`
	TimeMinutes *int             `json:"time_minutes" binding:"omitempty,gte=0"`
	Price       *decimal.Decimal `json:"price"`
	Link        *string          `json:"link" binding:"omitempty,max=255"`
	Description *string          `json:"description"`
	TagIDs      []int64          `json:"tags"`
}

type tagView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type recipeView struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	TimeMinutes int       `json:"time_minutes"`
	Price       string    `json:"price"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	Tags        []tagView `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toRecipeView(r *entity.Recipe) recipeView {
	tags := make([]tagView, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, tagView{ID: t.ID, Name: t.Name})
	}
	return recipeView{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price.StringFixed(2),
		Link:        r.Link,
		Description: r.Description,
		Tags:        tags,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// idParam parses the :id path segment. Non-numeric ids are treated the same
// as absent rows.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusNotFound, "not found", nil)
		return 0, false
	}
	return id, true
}

// List handles GET /api/recipes, newest first, caller's rows only.
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.Svc.List(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		h.Logger.WithError(err).Error("list recipes failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to list recipes", nil)
		return
	}
	views := make([]recipeView, 0, len(recipes))
	for i := range recipes {
		views = append(views, toRecipeView(&recipes[i]))
	}
	response.Success(c, http.StatusOK, views, "recipes", map[string]any{"count": len(views)})
}

// Create handles POST /api/recipes. The owner is always the caller; any
// owner field in the payload is ignored by construction.
func (h *RecipeHandler) Create(c *gin.Context) {
	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	r, err := h.Svc.Create(c.Request.Context(), middleware.CallerID(c), app.CreateRecipeInput{
		Title:       req.Title,
		TimeMinutes: *req.TimeMinutes,
		Price:       *req.Price,
		Link:        req.Link,
		Description: req.Description,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create recipe failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to create recipe", nil)
		return
	}
	response.Success(c, http.StatusCreated, toRecipeView(r), "recipe created", nil)
}

// Get handles GET /api/recipes/:id.
func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r, err := h.Svc.Get(c.Request.Context(), id, middleware.CallerID(c))
	if err != nil {
		h.respondErr(c, err, "get recipe failed")
		return
	}
	response.Success(c, http.StatusOK, toRecipeView(r), "recipe", nil)
}

// Update handles PUT and PATCH /api/recipes/:id with patch semantics:
// absent fields keep their stored values.
func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	r, err := h.Svc.Update(c.Request.Context(), id, middleware.CallerID(c), app.UpdateRecipeInput{
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
		Description: req.Description,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		h.respondErr(c, err, "update recipe failed")
		return
	}
	response.Success(c, http.StatusOK, toRecipeView(r), "recipe updated", nil)
}

// Delete handles DELETE /api/recipes/:id and answers 204 on success.
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id, middleware.CallerID(c)); err != nil {
		h.respondErr(c, err, "delete recipe failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) respondErr(c *gin.Context, err error, logMsg string) {
	if errors.Is(err, app.ErrNotFound) {
		response.Error[any](c, http.StatusNotFound, "not found", nil)
		return
	}
	h.Logger.WithError(err).Error(logMsg)
	response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
}
