package database

import (
	"testing"

	"github.com/franciscosanchezn/tablekeeper/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	pg := DatabaseConfig{Driver: "postgres", Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable", pg.DSN())

	lite := DatabaseConfig{Driver: "sqlite", Path: "app.sqlite"}
	assert.Equal(t, "app.sqlite", lite.DSN())

	mem := DatabaseConfig{Driver: "sqlite"}
	assert.Equal(t, ":memory:", mem.DSN())

	unknown := DatabaseConfig{Driver: "oracle"}
	assert.Empty(t, unknown.DSN())
}

func TestStringRedactsPassword(t *testing.T) {
	c := DatabaseConfig{Driver: "postgres", Password: "hunter2"}
	assert.NotContains(t, c.String(), "hunter2")
}

func TestInitDatabaseSQLiteInMemory(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	defer Close(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	_, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestMigrate(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite"})
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable("order_sequences"))
	assert.True(t, db.Migrator().HasIndex(&models.Reservation{}, "idx_active_slot"))
}
