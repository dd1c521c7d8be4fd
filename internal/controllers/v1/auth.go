package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httperror"
	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/tenant"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the routes for registration and login with
// the RouterGroup that is passed.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", co.Register)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", co.Login)
}

// Credentials is the request body for registration and login.
type Credentials struct {
	Name     string `json:"name" example:"jane"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type AuthData struct {
	Tenant tenant.Tenant `json:"tenant"` // The tenant the token belongs to
	Token  string        `json:"token"`  // Bearer token for all other endpoints
}

type AuthResponse struct {
	Data *AuthData `json:"data"`
}

// @Summary		Register
// @Description	Creates a new tenant with the default categories and returns a token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201			{object}	AuthResponse
// @Failure		400			{object}	httperror.Error
// @Param			credentials	body		Credentials	true	"Name and password"
// @Router			/v1/auth/register [post]
func (co Controller) Register(c *gin.Context) {
	var credentials Credentials
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	registered, token, err := co.tenants.Register(credentials.Name, credentials.Password)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Data: &AuthData{Tenant: registered, Token: token}})
}

// @Summary		Login
// @Description	Verifies name and password and returns a token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	AuthResponse
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Param			credentials	body		Credentials	true	"Name and password"
// @Router			/v1/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var credentials Credentials
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	authenticated, token, err := co.tenants.Login(credentials.Name, credentials.Password)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Data: &AuthData{Tenant: authenticated, Token: token}})
}
