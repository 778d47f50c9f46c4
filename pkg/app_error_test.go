package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb throttled")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	assert.ErrorIs(t, e, cause)
	assert.Contains(t, e.Error(), "dynamodb throttled")
	assert.Equal(t, HTTPError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", Status: 500}, e.ToHTTPError())

	simple := NewDomainErrorSimple("CONTRACT_STATE", "bad", 0)
	assert.Equal(t, http.StatusInternalServerError, simple.ToHTTPError().Status)
	assert.Equal(t, "CONTRACT_STATE: bad", simple.Error())
}
