package cart

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/c2399750-bit/Mido-Store/internal/domain/cart"
	"github.com/c2399750-bit/Mido-Store/internal/domain/product"
)

// ProductSource looks up the catalog entry a new cart line is copied from.
type ProductSource interface {
	Get(id string) (product.Product, error)
}

type Handler struct {
	repo     *Repo
	products ProductSource
}

func NewHandler(repo *Repo, products ProductSource) *Handler {
	return &Handler{repo: repo, products: products}
}

func (h *Handler) render(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.repo.Items(),
		"total": h.repo.Total(),
		"count": h.repo.Count(),
	})
}

func (h *Handler) GetCart(c *gin.Context) {
	h.render(c)
}

type AddItemReq struct {
	ProductID     string `json:"productId" binding:"required"`
	SelectedColor string `json:"selectedColor"`
	SelectedSize  string `json:"selectedSize"`
	// QuickAdd marks an add from a product listing, which has no option
	// pickers.
	QuickAdd bool `json:"quickAdd"`
}

func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	p, err := h.products.Get(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if req.QuickAdd {
		err = h.repo.QuickAdd(c.Request.Context(), p)
	} else {
		err = h.repo.AddProduct(c.Request.Context(), p, req.SelectedColor, req.SelectedSize)
	}
	if errors.Is(err, ErrOptionsRequired) || errors.Is(err, ErrUnknownOption) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
		return
	}
	h.render(c)
}

type UpdateQtyReq struct {
	cart.LineKey
	Delta int `json:"delta" binding:"required"`
}

func (h *Handler) UpdateQty(c *gin.Context) {
	var req UpdateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.repo.UpdateQuantity(c.Request.Context(), req.LineKey, req.Delta); err != nil {
		lineError(c, err, "failed to update qty")
		return
	}
	h.render(c)
}

type RemoveItemReq struct {
	cart.LineKey
	AllVariants bool `json:"allVariants"`
}

func (h *Handler) RemoveItem(c *gin.Context) {
	var req RemoveItemReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	var err error
	if req.AllVariants {
		err = h.repo.RemoveProduct(c.Request.Context(), req.ID)
	} else {
		err = h.repo.Remove(c.Request.Context(), req.LineKey)
	}
	if err != nil {
		lineError(c, err, "failed to remove item")
		return
	}
	h.render(c)
}

func lineError(c *gin.Context, err error, msg string) {
	if errors.Is(err, ErrLineNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
