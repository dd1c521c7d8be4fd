package ledger

// TransactionFilter restricts and paginates a transaction listing.
//
// The zero value lists the first 50 transactions of an owner: a Limit of 0
// means the default of 50, a negative Limit returns everything after Offset.
// Category "" and "all" both mean "do not filter by category".
type TransactionFilter struct {
	Category string
	Limit    int
	Offset   int
}

// DefaultLimit is the number of transactions a listing returns when the
// caller does not specify a limit.
const DefaultLimit = 50

func (f TransactionFilter) limit() int {
	if f.Limit == 0 {
		return DefaultLimit
	}

	return f.Limit
}

func (f TransactionFilter) matchesCategory(t Transaction) bool {
	return f.Category == "" || f.Category == "all" || t.Category == f.Category
}

// Store is the authoritative home of all transaction and category records.
// Every operation is scoped to the owner passed by the caller; records of
// other owners are invisible, an access with a foreign ID reports ErrNotFound.
//
// There are two implementations: MemoryStore keeps everything in process
// memory, GormStore persists to a sqlite database behind the same contract.
type Store interface {
	// Transactions returns one page of the owner's transactions, sorted by
	// date descending with newest-inserted-first as tie-break, and the total
	// number of matching records before pagination.
	Transactions(owner uint64, filter TransactionFilter) ([]Transaction, int64, error)

	// Transaction returns a single transaction by ID.
	Transaction(owner, id uint64) (Transaction, error)

	// CreateTransaction validates, stores and returns a new transaction.
	CreateTransaction(owner uint64, data TransactionEditable) (Transaction, error)

	// UpdateTransaction merges the patch over the stored record.
	UpdateTransaction(owner, id uint64, patch TransactionPatch) (Transaction, error)

	// DeleteTransaction removes a transaction. It reports whether a record
	// was actually removed and never errors on a missing ID.
	DeleteTransaction(owner, id uint64) (bool, error)

	// AllTransactions returns every transaction of the owner as a consistent
	// snapshot. This is what the aggregation engine folds over.
	AllTransactions(owner uint64) ([]Transaction, error)

	// Categories returns all categories of the owner.
	Categories(owner uint64) ([]Category, error)

	// CreateCategory validates, stores and returns a new category.
	CreateCategory(owner uint64, data CategoryEditable) (Category, error)

	// SeedDefaultCategories inserts the default category set for a new
	// owner. It is called exactly once, when the tenant is created.
	SeedDefaultCategories(owner uint64) error
}
