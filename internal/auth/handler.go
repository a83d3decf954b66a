package auth

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/c2399750-bit/Mido-Store/internal/domain/user"
	"github.com/c2399750-bit/Mido-Store/internal/session"
	"github.com/c2399750-bit/Mido-Store/internal/util"
)

// CartCounter reports how many units are in the cart; login lands on
// checkout when it is non-zero.
type CartCounter interface {
	Count() int
}

type Dependencies struct {
	Service *Service
	JWT     *JWTManager
	Session *session.State
	Cart    CartCounter
}

type Handler struct {
	deps Dependencies
}

func NewHandler(d Dependencies) *Handler {
	return &Handler{deps: d}
}

type loginReq struct {
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.deps.Service.Login(c.Request.Context(), req.EmailOrUsername, req.Password)
	if errors.Is(err, ErrLoginInvalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	h.issue(c, u)
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.deps.Service.Signup(c.Request.Context(), req)
	if errors.Is(err, ErrSignupInvalid) || errors.Is(err, ErrPasswordMismatch) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed"})
		return
	}
	h.issue(c, u)
}

func (h *Handler) issue(c *gin.Context, u user.User) {
	access, accessExp, err := h.deps.JWT.SignAccess(u.ID, string(u.Role), h.deps.Session.LoginID())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token signing failed"})
		return
	}
	page := h.deps.Session.AfterLogin(h.deps.Cart != nil && h.deps.Cart.Count() > 0)

	c.JSON(http.StatusOK, gin.H{
		"user":         u,
		"access_token": access,
		"access_exp":   accessExp,
		"page":         page,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.deps.Service.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) Me(c *gin.Context) {
	u, ok := UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) UpdateMe(c *gin.Context) {
	var req ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	u, err := h.deps.Service.UpdateProfile(c.Request.Context(), req)
	respondUser(c, u, err)
}

type addressReq struct {
	Address string `json:"address"`
}

func (h *Handler) AddAddress(c *gin.Context) {
	var req addressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	u, err := h.deps.Service.AddAddress(c.Request.Context(), req.Address)
	respondUser(c, u, err)
}

func (h *Handler) RemoveAddress(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address index"})
		return
	}
	u, err := h.deps.Service.RemoveAddress(c.Request.Context(), idx)
	respondUser(c, u, err)
}

type avatarReq struct {
	Avatar string `json:"avatar" binding:"required"`
}

func (h *Handler) SetAvatar(c *gin.Context) {
	var req avatarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	u, err := h.deps.Service.SetAvatar(c.Request.Context(), req.Avatar)
	respondUser(c, u, err)
}

func (h *Handler) DeleteAvatar(c *gin.Context) {
	u, err := h.deps.Service.DeleteAvatar(c.Request.Context())
	respondUser(c, u, err)
}

func respondUser(c *gin.Context, u user.User, err error) {
	var ve *util.ValidationError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, u)
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "fields": ve.Fields})
	case errors.Is(err, ErrEmptyAddress), errors.Is(err, ErrAvatarInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrAvatarTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case errors.Is(err, ErrAddressNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrNoUser):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
	}
}
