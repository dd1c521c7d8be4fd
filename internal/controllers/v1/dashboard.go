package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httperror"
	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/reports"
	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes registers the routes for dashboard queries with
// the RouterGroup that is passed.
func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/stats", httputil.OptionsGet)
	r.GET("/stats", co.GetDashboardStats)

	r.OPTIONS("/chart-data", httputil.OptionsGet)
	r.GET("/chart-data", co.GetChartData)

	r.OPTIONS("/category-breakdown", httputil.OptionsGet)
	r.GET("/category-breakdown", co.GetCategoryBreakdown)
}

// @Summary		Dashboard statistics
// @Description	Returns totals for the current month and their change against the previous month
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	StatsResponse
// @Router			/v1/dashboard/stats [get]
func (co Controller) GetDashboardStats(c *gin.Context) {
	stats, err := co.engine.DashboardStats(owner(c))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatsResponse{Data: &stats})
}

// @Summary		Chart data
// @Description	Returns per-month income and expense sums, oldest month first, ending with the current month
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	ChartDataResponse
// @Failure		400		{object}	httperror.Error
// @Param			months	query		int	false	"Number of months. Defaults to 6, must be at least 1."
// @Router			/v1/dashboard/chart-data [get]
func (co Controller) GetChartData(c *gin.Context) {
	var query ChartDataQuery
	if err := c.ShouldBind(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	series, err := co.engine.ChartSeries(owner(c), query.Months)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChartDataResponse{Data: &series})
}

// @Summary		Category breakdown
// @Description	Returns expense totals per category for the current month, quarter or year
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	CategoryBreakdownResponse
// @Failure		400		{object}	httperror.Error
// @Param			period	query		string	false	"One of month, quarter, year. Defaults to month."
// @Router			/v1/dashboard/category-breakdown [get]
func (co Controller) GetCategoryBreakdown(c *gin.Context) {
	var query CategoryBreakdownQuery
	if err := c.ShouldBind(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	breakdown, err := co.engine.CategoryBreakdown(owner(c), reports.Period(query.Period))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryBreakdownResponse{Data: breakdown})
}

type ChartDataQuery struct {
	Months int `form:"months,default=6"` // Number of months in the series
}

type CategoryBreakdownQuery struct {
	Period string `form:"period,default=month"` // One of month, quarter, year
}

type StatsResponse struct {
	Data *reports.DashboardStats `json:"data"` // Data for the dashboard
}

type ChartDataResponse struct {
	Data *reports.ChartSeries `json:"data"` // Data for the chart
}

type CategoryBreakdownResponse struct {
	Data []reports.CategorySum `json:"data"` // Expense totals per category
}
