package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NewNotFound("item", "abc")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewValidation("tax", "must be >= 0")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(NewConflict("category", "name", "Drinks")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, `item not found: abc`, NewNotFound("item", "abc").Error())
	assert.Equal(t, `category with name "Drinks" already exists`, NewConflict("category", "name", "Drinks").Error())

	err := &ValidationError{Details: map[string]string{
		"tax":        "must be >= 0",
		"baseAmount": "is required",
	}}
	assert.Equal(t, "validation failed: baseAmount: is required; tax: must be >= 0", err.Error())
}

func TestDetails(t *testing.T) {
	err := NewValidation("discount", "must be >= 0")
	assert.Equal(t, map[string]string{"discount": "must be >= 0"}, Details(err))
	assert.Nil(t, Details(NewNotFound("item", "x")))
	assert.Nil(t, Details(errors.New("boom")))
}

func TestFromValidator(t *testing.T) {
	type payload struct {
		Name string  `validate:"required"`
		Tax  float64 `validate:"gte=0"`
	}

	v := validator.New()
	err := v.Struct(payload{Name: "", Tax: -1})
	require.Error(t, err)

	converted := FromValidator(err)
	require.True(t, IsValidation(converted))

	details := Details(converted)
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "tax")
}
