package ledger_test

import (
	"testing"

	"github.com/fintrack-app/backend/internal/ledger"
	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessage(t *testing.T) {
	err := ledger.ValidationError{Fields: map[string]string{
		"kind":   "kind must be income or expense",
		"amount": "amount must be positive",
	}}

	// Field order in the message is deterministic
	assert.Equal(t, "validation failed: amount must be positive, kind must be income or expense", err.Error())
}
