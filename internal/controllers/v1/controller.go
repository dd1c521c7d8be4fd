// Package v1 implements the v1 REST API.
package v1

import (
	"net/http"
	"strings"

	"github.com/fintrack-app/backend/internal/httperror"
	"github.com/fintrack-app/backend/internal/ledger"
	"github.com/fintrack-app/backend/internal/reports"
	"github.com/fintrack-app/backend/internal/tenant"
	"github.com/gin-gonic/gin"
)

// ownerKey is the gin context key the authenticated owner ID is stored
// under.
const ownerKey = "ownerID"

// Controller connects the HTTP layer to the ledger store, the reports
// engine and the tenant registry.
type Controller struct {
	store   ledger.Store
	engine  *reports.Engine
	tenants *tenant.Registry
}

// NewController returns a Controller using the passed collaborators.
func NewController(store ledger.Store, engine *reports.Engine, tenants *tenant.Registry) Controller {
	return Controller{
		store:   store,
		engine:  engine,
		tenants: tenants,
	}
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is
// passed. Everything except the auth endpoints requires a token.
func (co Controller) RegisterRoutes(group *gin.RouterGroup) {
	co.RegisterAuthRoutes(group.Group("/auth"))

	authenticated := group.Group("")
	authenticated.Use(co.requireToken())

	co.RegisterTransactionRoutes(authenticated.Group("/transactions"))
	co.RegisterCategoryRoutes(authenticated.Group("/categories"))
	co.RegisterDashboardRoutes(authenticated.Group("/dashboard"))
}

// requireToken verifies the Bearer token and stores the owner ID it grants
// access to in the request context. Tokens are also accepted as a "token"
// query parameter for download links that cannot set headers.
func (co Controller) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		header := c.GetHeader("Authorization")
		if after, ok := strings.CutPrefix(header, "Bearer "); ok {
			tokenString = after
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		owner, err := co.tenants.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(err))
			return
		}

		c.Set(ownerKey, owner)
		c.Next()
	}
}

// owner returns the authenticated owner ID for the request.
func owner(c *gin.Context) uint64 {
	return c.GetUint64(ownerKey)
}

// URIID is the URI binding for routes addressing a single resource.
type URIID struct {
	ID uint64 `uri:"id" binding:"required"` // ID of the resource
}
