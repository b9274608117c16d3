package lib_test

import (
	"testing"

	"vdeck_server/lib"
	"vdeck_server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_ValidRequest(t *testing.T) {
	req := &structs.ProductRequest{
		Name:     "Mug",
		Price:    9.99,
		Category: "kitchen",
		Images:   [][]byte{[]byte("fileA")},
	}

	assert.NoError(t, lib.ValidateStruct(req))
}

func TestValidateStruct_CollectsFieldErrors(t *testing.T) {
	req := &structs.ProductRequest{
		Price: -1,
	}

	err := lib.ValidateStruct(req)

	var validationErr *lib.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := map[string]string{}
	for _, fe := range validationErr.Errors {
		fields[fe.Field] = fe.Message
	}

	assert.Equal(t, "is required", fields["name"])
	assert.Equal(t, "is required", fields["category"])
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "images")
}

func TestNewValidationError(t *testing.T) {
	err := lib.NewValidationError("total", "must be a number")

	require.Len(t, err.Errors, 1)
	assert.Equal(t, "total", err.Errors[0].Field)
	assert.Equal(t, "validation failed", err.Error())
}
