package db

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

func TestMigrate_CreatesTables(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(gdb))
	// second run is a no-op
	require.NoError(t, Migrate(gdb))

	m := gdb.Migrator()
	for _, model := range []any{
		&models.User{}, &models.Job{}, &models.Bid{},
		&models.PricingConfig{}, &models.Payment{}, &models.AuditLog{},
	} {
		assert.True(t, m.HasTable(model), "%T", model)
	}
}
