package controllers

import (
	"errors"
	"net/http"

	"MediSlot/constants"
	"MediSlot/role"
	"MediSlot/services"

	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

// Guard builds the per-route privilege check for a module and action.
type Guard func(module, action string) gin.HandlerFunc

func claimsFromContext(c *gin.Context) services.Claims {
	return services.Claims{
		Code:         c.GetString("code"),
		Collection:   c.GetString("collection"),
		TenantId:     c.GetString("tenantId"),
		IsSuperAdmin: c.GetBool("isSuperAdmin"),
	}
}

/*
* Read the claims the JWT middleware put on the context
* Resolve them to the caller scope through the caller's own record
* Answer the request when the caller cannot be scoped
 */
func callerScope(c *gin.Context, svc *services.AvailabilityService) (services.Scope, bool) {
	scope, err := svc.ResolveScope(c, claimsFromContext(c))
	if err != nil {
		failed(c, err)
		return services.Scope{}, false
	}
	return scope, true
}

func canManage(c *gin.Context, scope services.Scope) bool {
	if role.CanManageAvailability(scope.Actor.Role) {
		return true
	}
	failed(c, constants.ErrForbidden)
	return false
}

// succeeded answers with the Core success envelope for any payload. Core's
// SuccessResponse only carries strings, maps and untyped slices.
func succeeded(c *gin.Context, data interface{}) {
	if msg, ok := data.(string); ok {
		c.JSON(http.StatusOK, util.SuccessResponse(msg))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "status": util.STATUS_SUCCESS})
}

func failed(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, constants.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, constants.ErrForbidden):
		status = http.StatusForbidden
	}
	c.JSON(status, util.FailedResponse(err))
}
