package session

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CartCounter reports how many units are in the cart.
type CartCounter interface {
	Count() int
}

type Handler struct {
	state *State
	cart  CartCounter
}

func NewHandler(state *State, cart CartCounter) *Handler {
	return &Handler{state: state, cart: cart}
}

func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.state.View())
}

type navigateReq struct {
	Page      Page   `json:"page" binding:"required"`
	ProductID string `json:"productId"`
}

func (h *Handler) Navigate(c *gin.Context) {
	var req navigateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Page == PageProduct && req.ProductID != "" {
		h.state.OpenProduct(req.ProductID)
	} else if _, err := h.state.Navigate(req.Page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.state.View())
}

type langReq struct {
	Lang string `json:"lang"`
}

// SetLang sets the language, or toggles it when no language is given.
func (h *Handler) SetLang(c *gin.Context) {
	var req langReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	var err error
	if req.Lang == "" {
		_, err = h.state.ToggleLang(c.Request.Context())
	} else {
		err = h.state.SetLang(c.Request.Context(), req.Lang)
	}
	if errors.Is(err, ErrInvalidLang) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save language"})
		return
	}
	c.JSON(http.StatusOK, h.state.View())
}

type searchReq struct {
	Query string `json:"query"`
}

func (h *Handler) SetSearch(c *gin.Context) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	h.state.SetSearch(req.Query)
	c.JSON(http.StatusOK, h.state.View())
}

type cartReq struct {
	Open bool `json:"open"`
}

func (h *Handler) SetCart(c *gin.Context) {
	var req cartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	h.state.SetCartOpen(req.Open)
	c.JSON(http.StatusOK, h.state.View())
}

func (h *Handler) Checkout(c *gin.Context) {
	h.state.ProceedToCheckout(h.cart.Count() > 0)
	c.JSON(http.StatusOK, h.state.View())
}
