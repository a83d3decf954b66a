package orders

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/c2399750-bit/Mido-Store/internal/auth"
	"github.com/c2399750-bit/Mido-Store/internal/domain/order"
	"github.com/c2399750-bit/Mido-Store/internal/util"
)

type Handler struct {
	repo     *Repo
	checkout *Checkout
	catalog  Catalog
}

func NewHandler(repo *Repo, checkout *Checkout, catalog Catalog) *Handler {
	return &Handler{repo: repo, checkout: checkout, catalog: catalog}
}

func (h *Handler) Quote(c *gin.Context) {
	var req CheckoutForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	c.JSON(http.StatusOK, h.checkout.Quote(req))
}

func (h *Handler) Place(c *gin.Context) {
	u, ok := auth.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	var req CheckoutForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	o, err := h.checkout.Place(c.Request.Context(), u, req)
	var ve *util.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "fields": ve.Fields})
		return
	case errors.Is(err, ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *Handler) MyOrders(c *gin.Context) {
	u, ok := auth.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.repo.ForUser(u.Email)})
}

func (h *Handler) AdminList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.repo.List()})
}

type statusReq struct {
	Status order.Status `json:"status" binding:"required"`
}

func (h *Handler) AdminSetStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	o, err := h.repo.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	switch {
	case errors.Is(err, ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) AdminStats(c *gin.Context) {
	c.JSON(http.StatusOK, ComputeStats(h.catalog, h.repo))
}
