package middleware

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/smartretail/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createPayload struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Quantity int64  `json:"quantity" binding:"required"`
}

func TestFormatValidationErrors(t *testing.T) {
	SetupValidator()

	err := binding.Validator.ValidateStruct(&createPayload{})
	require.Error(t, err)

	resp := FormatValidationErrors(err, "req-1")

	require.NotNil(t, resp.Error)
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-1", resp.Error.RequestID)
	require.Len(t, resp.Error.Details, 2)
	assert.Equal(t, "name", resp.Error.Details[0].Field)
	assert.Equal(t, "This field is required", resp.Error.Details[0].Message)
	assert.Equal(t, "quantity", resp.Error.Details[1].Field)
}

func TestFormatValidationErrorsFallback(t *testing.T) {
	resp := FormatValidationErrors(assert.AnError, "")

	require.NotNil(t, resp.Error)
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeInvalidJSON, resp.Error.Code)
	assert.Empty(t, resp.Error.Details)
}
