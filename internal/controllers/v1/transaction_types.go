package v1

import (
	"github.com/fintrack-app/backend/internal/ledger"
)

// TransactionQueryFilter restricts and paginates a transaction listing.
type TransactionQueryFilter struct {
	Category string `form:"category"`                // Only transactions with this category name, "all" disables the filter
	Offset   int    `form:"offset,default=0"`        // The offset of the first transaction returned
	Limit    int    `form:"limit,default=50"`        // Maximum number of transactions to return
}

func (f TransactionQueryFilter) filter() ledger.TransactionFilter {
	return ledger.TransactionFilter{
		Category: f.Category,
		Limit:    f.Limit,
		Offset:   f.Offset,
	}
}

// Pagination contains information about the pagination of a listing.
type Pagination struct {
	Count  int   `json:"count" example:"25"`   // Number of records in this response
	Offset int   `json:"offset" example:"0"`   // The offset used for the response
	Limit  int   `json:"limit" example:"50"`   // The limit used for the response
	Total  int64 `json:"total" example:"827"`  // Number of matching records before pagination
}

type TransactionListResponse struct {
	Data       []ledger.Transaction `json:"data"`       // List of transactions
	Pagination Pagination           `json:"pagination"` // Pagination information
}

type TransactionResponse struct {
	Data *ledger.Transaction `json:"data"` // Data for the transaction
}
