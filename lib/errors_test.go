package lib_test

import (
	"errors"
	"fmt"
	"testing"

	"vdeck_server/lib"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapPgError(t *testing.T) {
	assert.ErrorIs(t, lib.MapPgError(&pgconn.PgError{Code: "23505"}), lib.ErrConflict)
	assert.ErrorIs(t, lib.MapPgError(&pgconn.PgError{Code: "P0002"}), lib.ErrNotFound)

	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, lib.MapPgError(wrapped), lib.ErrConflict)

	other := errors.New("connection reset")
	assert.Equal(t, other, lib.MapPgError(other))
}

func TestStoreError_WrapsCause(t *testing.T) {
	cause := errors.New("connection lost")
	err := lib.NewStoreError("insert product", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "insert product")
}
