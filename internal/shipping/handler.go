package shipping

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/c2399750-bit/Mido-Store/internal/util"
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

func (h *Handler) AdminCreate(c *gin.Context) {
	var req Input
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	z, err := h.repo.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "failed to create zone")
		return
	}
	c.JSON(http.StatusCreated, z)
}

func (h *Handler) AdminUpdate(c *gin.Context) {
	var req Input
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	z, err := h.repo.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err, "failed to update zone")
		return
	}
	c.JSON(http.StatusOK, z)
}

func (h *Handler) AdminDelete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "failed to delete zone")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func writeError(c *gin.Context, err error, msg string) {
	var ve *util.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "fields": ve.Fields})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
