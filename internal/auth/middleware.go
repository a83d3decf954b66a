package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/c2399750-bit/Mido-Store/internal/domain/user"
	"github.com/c2399750-bit/Mido-Store/internal/session"
)

const CtxUserIDKey = "user_id"
const CtxRoleKey = "role"
const CtxUserKey = "user"

// AuthMiddleware accepts a bearer token only while it belongs to the
// session's current login. Logging out or logging in again, even as the
// same user, invalidates outstanding tokens.
func AuthMiddleware(jwtMgr *JWTManager, sess *session.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token := strings.TrimPrefix(h, "Bearer ")
		claims, err := jwtMgr.ParseAccess(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid access token"})
			return
		}
		u, ok := sess.User()
		if !ok || u.ID != claims.UserID || claims.LoginID == "" || claims.LoginID != sess.LoginID() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session ended"})
			return
		}
		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxRoleKey, string(u.Role))
		c.Set(CtxUserKey, u)
		c.Next()
	}
}

func RequireRole(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, _ := c.Get(CtxRoleKey)
		if rStr, ok := r.(string); !ok || rStr != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// UserFrom returns the user resolved by AuthMiddleware.
func UserFrom(c *gin.Context) (user.User, bool) {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return user.User{}, false
	}
	u, ok := v.(user.User)
	return u, ok
}
