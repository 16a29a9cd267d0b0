package store

import (
	"testing"

	"helpdesk/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
// A single connection keeps every query on the same in-memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Chamado{}, &models.ChatMessage{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, nome, email, cargo string, nivel *int) models.User {
	t.Helper()

	user := models.User{
		Nome:  nome,
		Email: email,
		Senha: "hash",
		Cargo: cargo,
		Nivel: nivel,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
