package ledger

// DefaultCategories returns the category set every new tenant starts with.
func DefaultCategories() []CategoryEditable {
	return []CategoryEditable{
		{Name: "Food & Dining", Kind: KindExpense, Color: "#f59e0b"},
		{Name: "Transportation", Kind: KindExpense, Color: "#3b82f6"},
		{Name: "Shopping", Kind: KindExpense, Color: "#8b5cf6"},
		{Name: "Entertainment", Kind: KindExpense, Color: "#ec4899"},
		{Name: "Utilities", Kind: KindExpense, Color: "#06b6d4"},
		{Name: "Healthcare", Kind: KindExpense, Color: "#64748b"},
		{Name: "Salary", Kind: KindIncome, Color: "#10b981"},
		{Name: "Freelance", Kind: KindIncome, Color: "#059669"},
		{Name: "Investment", Kind: KindIncome, Color: "#047857"},
	}
}
