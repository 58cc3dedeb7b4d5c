package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"triply/internal/domain"
)

const (
	sessionCookie = "triply_role"
	// The cookie's own TTL is the only expiry mechanism.
	sessionMaxAge = 7 * 24 * 60 * 60
)

type loginRequest struct {
	Role string `json:"role"`
}

type rolePayload struct {
	Role *domain.Role `json:"role"`
}

// currentRole decodes the session cookie. A missing or unrecognized
// cookie is a guest, never an error.
func currentRole(c *gin.Context) domain.Role {
	v, err := c.Cookie(sessionCookie)
	if err != nil {
		return domain.RoleGuest
	}
	return domain.ParseRole(v)
}

func meHandler(c *gin.Context) {
	role := currentRole(c)
	if role == domain.RoleGuest {
		respondData(c, http.StatusOK, rolePayload{Role: nil})
		return
	}
	respondData(c, http.StatusOK, rolePayload{Role: &role})
}

func loginHandler(svc authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "role must be user or admin")
			return
		}
		role, err := svc.Login(req.Role)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, string(role), sessionMaxAge, "/", "", false, true)
		respondData(c, http.StatusOK, rolePayload{Role: &role})
	}
}

// logoutHandler clears the cookie unconditionally and always succeeds.
func logoutHandler(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	respondData(c, http.StatusOK, rolePayload{Role: nil})
}

// requireAdmin gates the admin write endpoints: no session is 401, a
// non-admin session is 403.
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := currentRole(c)
		if role == domain.RoleGuest {
			respondError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		if role != domain.RoleAdmin {
			respondError(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
