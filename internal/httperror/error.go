// Package httperror provides the JSON error envelope for the API.
package httperror

type Error struct {
	Message string `json:"error" example:"there is no resource for the ID you specified"`

	// Fields names the offending fields of a validation error, if any.
	Fields map[string]string `json:"fields,omitempty"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
