package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/httperror"
	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// CSV export
	{
		r.OPTIONS("/export/csv", httputil.OptionsGet)
		r.GET("/export/csv", co.ExportTransactionsCSV)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		List transactions
// @Description	Returns a page of the tenant's transactions, newest date first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	httperror.Error
// @Router			/v1/transactions [get]
// @Param			category	query	string	false	"Only transactions with this category name. 'all' disables the filter."
// @Param			offset		query	uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of transactions to return. Defaults to 50, negative values return everything."
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	transactions, total, err := co.store.Transactions(owner(c), filter.filter())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: transactions,
		Pagination: Pagination{
			Count:  len(transactions),
			Offset: filter.Offset,
			Limit:  filter.Limit,
			Total:  total,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path	uint64	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	transaction, err := co.store.Transaction(owner(c), uri.ID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Create transaction
// @Description	Creates a new transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	httperror.Error
// @Param			transaction	body		ledger.TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var data ledger.TransactionEditable
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	transaction, err := co.store.CreateTransaction(owner(c), data)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Fields not sent are left unchanged.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Param			id			path		uint64						true	"ID of the transaction"
// @Param			transaction	body		ledger.TransactionPatch	true	"Fields to update"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	var patch ledger.TransactionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	transaction, err := co.store.UpdateTransaction(owner(c), uri.ID, patch)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path	uint64	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	removed, err := co.store.DeleteTransaction(owner(c), uri.ID)
	if err != nil {
		renderError(c, err)
		return
	}

	if !removed {
		renderError(c, ledger.ErrNotFound)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
