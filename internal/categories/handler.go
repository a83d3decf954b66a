package categories

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.repo.List()})
}

type CreateCategoryReq struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) AdminCreate(c *gin.Context) {
	var req CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	err := h.repo.Create(c.Request.Context(), req.Name)
	switch {
	case errors.Is(err, ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, ErrEmptyName), errors.Is(err, ErrReserved), errors.Is(err, ErrSlash):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"items": h.repo.List()})
}

// AdminDelete answers 409 with the product count until the request is
// repeated with ?confirm=true.
func (h *Handler) AdminDelete(c *gin.Context) {
	confirm := c.Query("confirm") == "true"

	err := h.repo.Delete(c.Request.Context(), c.Param("name"), confirm)
	var inUse *InUseError
	switch {
	case errors.As(err, &inUse):
		c.JSON(http.StatusConflict, gin.H{
			"error":    err.Error(),
			"products": inUse.Products,
			"confirm":  "repeat with ?confirm=true to delete anyway",
		})
		return
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.repo.List()})
}
