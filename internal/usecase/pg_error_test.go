package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"}

	assert.True(t, isDuplicateKeyError(dup, "username"))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("create failed: %w", dup), "username"))
	assert.False(t, isDuplicateKeyError(dup, "email"))

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "idx_users_username"}
	assert.False(t, isDuplicateKeyError(fk, "username"))

	assert.False(t, isDuplicateKeyError(errors.New("plain error"), "username"))
	assert.False(t, isDuplicateKeyError(nil, "username"))
}

func TestIsForeignKeyError(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "bookings_doctor_id_fkey"}

	assert.True(t, isForeignKeyError(fk, "doctor"))
	assert.True(t, isForeignKeyError(fmt.Errorf("insert failed: %w", fk), "doctor"))
	assert.False(t, isForeignKeyError(fk, "patient"))

	dup := &pgconn.PgError{Code: "23505", ConstraintName: "bookings_doctor_id_fkey"}
	assert.False(t, isForeignKeyError(dup, "doctor"))

	assert.False(t, isForeignKeyError(errors.New("plain error"), "doctor"))
}
