package common

import (
	"bodylover-backend/internal/middleware"
	"bodylover-backend/internal/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

const forbiddenMessage = "Forbidden: resource belongs to another user"

// AuthorizeUser lets the request act for userID. Without an authenticated
// user (AUTH_REQUIRED off) every id is accepted; otherwise it must be the
// token's own. On refusal it writes a 403 and returns false.
func AuthorizeUser(c *gin.Context, userID uint) bool {
	user, ok := middleware.CurrentUser(c)
	if !ok || user.ID == userID {
		return true
	}
	utils.Fail(c, http.StatusForbidden, forbiddenMessage)
	return false
}

// AuthorizeOwner is AuthorizeUser for a resource looked up by lookup. Unknown
// resources pass so the handler can answer them as usual.
func AuthorizeOwner(c *gin.Context, lookup func() (ownerID uint, found bool, err error), action string) bool {
	if _, ok := middleware.CurrentUser(c); !ok {
		return true
	}

	ownerID, found, err := lookup()
	if err != nil {
		RespondError(c, err, action)
		return false
	}
	if !found {
		return true
	}
	return AuthorizeUser(c, ownerID)
}
