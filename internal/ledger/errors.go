package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when a resource does not exist or belongs to a
// different owner. The two cases are deliberately indistinguishable so that
// record existence does not leak across tenants.
var ErrNotFound = errors.New("there is no resource for the ID you specified")

// ValidationError reports malformed input. Fields maps each offending field
// name to a human readable message.
type ValidationError struct {
	Fields map[string]string
}

func (e ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	messages := make([]string, 0, len(names))
	for _, name := range names {
		messages = append(messages, e.Fields[name])
	}

	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}
