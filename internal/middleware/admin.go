package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/taskhive/taskhive-api/internal/constants"
	apierrors "github.com/taskhive/taskhive-api/internal/errors"
	"github.com/taskhive/taskhive-api/internal/repository"
)

// RequireAdmin resolves the current admin from the "admin_session" cookie
// namespace. Mechanics mirror RequireUser, but the namespaces share no
// identity: a user session never satisfies an admin gate.
func RequireAdmin(adminRepo repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.DefaultMany(c, constants.AdminSessionName)
		raw := session.Get(constants.ContextKeyAdminID)

		adminID, ok := toUint64(raw)
		if !ok {
			apierrors.Unauthorized(c, "Admin authentication required")
			c.Abort()
			return
		}

		admin, err := adminRepo.FindByID(adminID)
		if err != nil {
			apierrors.Unauthorized(c, "Admin authentication required")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAdminID, admin.ID)
		c.Next()
	}
}

// GetAdminID retrieves the current admin ID from context
func GetAdminID(c *gin.Context) (uint64, bool) {
	return contextUint64(c, constants.ContextKeyAdminID)
}
