package art

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Repo   *Repo
	Picker *Picker
}

func NewHandler(repo *Repo, picker *Picker) *Handler {
	return &Handler{Repo: repo, Picker: picker}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/random", h.random)
	r.GET("/categories", h.listCategories)
	r.GET("/categories/:name/random", h.randomInCategory)
}

func (h *Handler) listCategories(c *gin.Context) {
	cats, err := h.Repo.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total": len(cats),
		"items": cats,
	})
}

func (h *Handler) random(c *gin.Context) {
	pick, err := h.Picker.Pick(c.Request.Context(), "")
	if err != nil {
		h.pickError(c, err)
		return
	}
	c.JSON(http.StatusOK, pick)
}

func (h *Handler) randomInCategory(c *gin.Context) {
	pick, err := h.Picker.Pick(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.pickError(c, err)
		return
	}
	c.JSON(http.StatusOK, pick)
}

func (h *Handler) pickError(c *gin.Context, err error) {
	var ambiguous *AmbiguousCategoryError
	switch {
	case errors.As(err, &ambiguous):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "ambiguous category",
			"candidates": ambiguous.Candidates,
		})
	case errors.Is(err, ErrNoCategories), errors.Is(err, ErrNoArtworks):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pick failed"})
	}
}
