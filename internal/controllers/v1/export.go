package v1

import (
	"bytes"
	"encoding/csv"
	"net/http"

	"github.com/fintrack-app/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

// @Summary		Export transactions
// @Description	Returns all transactions of the tenant as CSV, newest date first
// @Tags			Transactions
// @Produce		text/csv
// @Success		200
// @Router			/v1/transactions/export/csv [get]
func (co Controller) ExportTransactionsCSV(c *gin.Context) {
	// A negative limit returns the full set
	transactions, _, err := co.store.Transactions(owner(c), ledger.TransactionFilter{Limit: -1})
	if err != nil {
		renderError(c, err)
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{"Date", "Description", "Category", "Kind", "Amount"}}
	for _, t := range transactions {
		records = append(records, []string{
			t.Date.Format("2006-01-02"),
			t.Description,
			t.Category,
			string(t.Kind),
			t.Amount.StringFixed(2),
		})
	}

	if err := w.WriteAll(records); err != nil {
		renderError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=transactions.csv`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
