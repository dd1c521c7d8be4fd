package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httperror"
	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetCategories)
	r.POST("", co.CreateCategory)
}

// @Summary		List categories
// @Description	Returns all categories of the tenant
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	categories, err := co.store.Categories(owner(c))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	httperror.Error
// @Param			category	body		ledger.CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var data ledger.CategoryEditable
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	category, err := co.store.CreateCategory(owner(c), data)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}

type CategoryListResponse struct {
	Data []ledger.Category `json:"data"` // List of categories
}

type CategoryResponse struct {
	Data *ledger.Category `json:"data"` // Data for the category
}
