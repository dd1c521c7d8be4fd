package v1

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/fintrack-app/backend/internal/httperror"
	"github.com/fintrack-app/backend/internal/ledger"
	"github.com/fintrack-app/backend/internal/tenant"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/go-sqlite"
)

// status returns the appropriate HTTP status for an error from the ledger,
// the reports engine or the tenant registry.
func status(err error) int {
	var validation ledger.ValidationError

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest

	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, tenant.ErrNameTaken):
		return http.StatusBadRequest

	case errors.Is(err, tenant.ErrInvalidCredentials), errors.Is(err, tenant.ErrInvalidToken):
		return http.StatusUnauthorized

	case reflect.TypeOf(err) == reflect.TypeOf(&sqlite.Error{}):
		return http.StatusInternalServerError
	}

	// Everything else is an invariant violation the caller cannot recover from
	return http.StatusInternalServerError
}

// renderError writes the error envelope for err, including the field list
// of a validation error.
func renderError(c *gin.Context, err error) {
	e := httperror.New(err)

	var validation ledger.ValidationError
	if errors.As(err, &validation) {
		e.Fields = validation.Fields
	}

	c.JSON(status(err), e)
}
