package database

import (
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "ledger",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.ErrorContains(t, err, "unsupported database driver")
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		assert.Equal(t, "sqlite", db.Dialector.Name())
	})
}

func TestMySQLDSN_KeepsSpecialCharacters(t *testing.T) {
	cfg := Config{Host: "db.local", Port: 3306, User: "ledger", Password: "p@ss:w/rd?#%", Name: "ledger"}

	parsed, err := mysqldriver.ParseDSN(mysqlDSN(cfg, 5))
	require.NoError(t, err)
	assert.Equal(t, "ledger", parsed.User)
	assert.Equal(t, "p@ss:w/rd?#%", parsed.Passwd)
	assert.Equal(t, "db.local:3306", parsed.Addr)
	assert.Equal(t, "ledger", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, 5*time.Second, parsed.Timeout)
	assert.Equal(t, "utf8mb4", parsed.Params["charset"])
}

func TestPostgresDSN_QuotesValues(t *testing.T) {
	cfg := Config{Host: "db.local", Port: 5432, User: "ledger", Password: `it's a \secret`, Name: "ledger"}

	dsn := postgresDSN(cfg, 5)
	assert.Contains(t, dsn, `password='it\'s a \\secret'`)
	assert.Contains(t, dsn, "host='db.local'")
	assert.Contains(t, dsn, "connect_timeout='5'")
}
