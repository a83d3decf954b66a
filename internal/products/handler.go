package products

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/c2399750-bit/Mido-Store/internal/auth"
	"github.com/c2399750-bit/Mido-Store/internal/copywriter"
	"github.com/c2399750-bit/Mido-Store/internal/domain/product"
	"github.com/c2399750-bit/Mido-Store/internal/util"
)

// SearchSource supplies the header search box text when a listing request
// carries no q parameter.
type SearchSource interface {
	Search() string
}

type Drafter interface {
	Draft(ctx context.Context, name, category string) copywriter.Draft
}

type Handler struct {
	repo    *Repo
	search  SearchSource
	drafter Drafter
}

func NewHandler(repo *Repo, search SearchSource, drafter Drafter) *Handler {
	return &Handler{repo: repo, search: search, drafter: drafter}
}

// Public: list products (optional q and category)
func (h *Handler) ListPublic(c *gin.Context) {
	q, ok := c.GetQuery("q")
	if !ok && h.search != nil {
		q = h.search.Search()
	}
	items := h.repo.List(Filter{Query: q, Category: c.Query("category")})
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Public: product details with related products and rating summary
func (h *Handler) GetPublic(c *gin.Context) {
	p, err := h.repo.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	avg := p.AverageRating()
	c.JSON(http.StatusOK, gin.H{
		"product":       p,
		"related":       h.repo.Related(p),
		"averageRating": product.FormatRating(avg),
		"reviewCount":   len(p.Reviews),
	})
}

func (h *Handler) AddReview(c *gin.Context) {
	u, ok := auth.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	var req ReviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	rv, err := req.Review(u)
	if err != nil {
		writeError(c, err, "failed to add review")
		return
	}
	if err := h.repo.AddReview(c.Request.Context(), c.Param("id"), rv); err != nil {
		writeError(c, err, "failed to add review")
		return
	}
	c.JSON(http.StatusCreated, rv)
}

// Admin: full listing, ignoring the storefront search box
func (h *Handler) AdminList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.repo.All()})
}

func (h *Handler) AdminCreate(c *gin.Context) {
	var req Input
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	p, err := h.repo.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "failed to create product")
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) AdminUpdate(c *gin.Context) {
	var req Input
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	p, err := h.repo.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err, "failed to update product")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) AdminDelete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type draftReq struct {
	NameAr   string `json:"nameAr" binding:"required"`
	Category string `json:"category"`
}

// AdminDraft fills the Arabic description and specs of the product form.
func (h *Handler) AdminDraft(c *gin.Context) {
	var req draftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product name is required"})
		return
	}
	c.JSON(http.StatusOK, h.drafter.Draft(c.Request.Context(), req.NameAr, req.Category))
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
