package v1_test

import (
	"encoding/csv"
	"net/http"
	"strings"
	"time"

	"github.com/fintrack-app/backend/internal/ledger"
	"github.com/fintrack-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *APISuite) TestExportTransactionsCSV() {
	suite.createTestTransaction(ledger.TransactionEditable{
		Description: "Groceries",
		Amount:      decimal.NewFromFloat(54.9),
		Kind:        ledger.KindExpense,
		Category:    "Food & Dining",
		Date:        time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	})
	suite.createTestTransaction(ledger.TransactionEditable{
		Description: "Salary",
		Amount:      decimal.NewFromInt(2500),
		Kind:        ledger.KindIncome,
		Category:    "Salary",
		Date:        time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions/export/csv", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	assert.Equal(suite.T(), "text/csv", recorder.Header().Get("Content-Type"))
	assert.Contains(suite.T(), recorder.Header().Get("Content-Disposition"), "attachment")

	records, err := csv.NewReader(strings.NewReader(recorder.Body.String())).ReadAll()
	require.Nil(suite.T(), err)

	require.Len(suite.T(), records, 3)
	assert.Equal(suite.T(), []string{"Date", "Description", "Category", "Kind", "Amount"}, records[0])

	// Newest date first, two decimal places
	assert.Equal(suite.T(), []string{"2024-02-28", "Salary", "Salary", "income", "2500.00"}, records[1])
	assert.Equal(suite.T(), []string{"2024-02-10", "Groceries", "Food & Dining", "expense", "54.90"}, records[2])
}

func (suite *APISuite) TestExportTransactionsCSVEmpty() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions/export/csv", "", suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	records, err := csv.NewReader(strings.NewReader(recorder.Body.String())).ReadAll()
	require.Nil(suite.T(), err)

	// Only the header row
	require.Len(suite.T(), records, 1)
}
