package httperr

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestPgClassification(t *testing.T) {
	fk := fmt.Errorf("insert bid: %w", &pgconn.PgError{Code: "23503", ConstraintName: "fk_jobs_bids"})
	dup := &pgconn.PgError{Code: "23505"}

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(dup))

	assert.True(t, IsUniqueViolation(dup))
	assert.False(t, IsUniqueViolation(fk))

	assert.True(t, IsForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
}

func TestPgClassification_TranslatedErrors(t *testing.T) {
	dialector := postgres.Dialector{}

	fk := dialector.Translate(&pgconn.PgError{Code: "23503", ConstraintName: "fk_bids_provider"})
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsUniqueViolation(fk))

	dup := dialector.Translate(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})
	assert.True(t, IsUniqueViolation(dup))
	assert.False(t, IsForeignKeyViolation(dup))
}
