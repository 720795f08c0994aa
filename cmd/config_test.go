package cmd_test

import (
	"testing"

	"eats/cmd"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_WithDefaults(t *testing.T) {
	c := cmd.Config{}.WithDefaults()

	assert.Equal(t, "8080", c.HTTPPort)
	assert.Equal(t, "disable", c.DBSslMode)
	assert.Equal(t, "eats.notifications", c.RabbitMQExchange)
	assert.Empty(t, c.PromotionCron)
}

func TestConfig_WithDefaultsKeepsValues(t *testing.T) {
	c := cmd.Config{HTTPPort: "9000", DBSslMode: "require", RabbitMQExchange: "orders"}.WithDefaults()

	assert.Equal(t, "9000", c.HTTPPort)
	assert.Equal(t, "require", c.DBSslMode)
	assert.Equal(t, "orders", c.RabbitMQExchange)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		c := cmd.Config{DBHost: "localhost", DBPort: "5432", DBUser: "eats", DBPassword: "secret", DBName: "eats"}

		require.NoError(t, c.Validate())
	})

	t.Run("missing settings are all reported", func(t *testing.T) {
		c := cmd.Config{DBHost: "localhost", DBPort: "5432"}

		err := c.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "DB_USER")
		assert.Contains(t, err.Error(), "DB_PASSWORD")
		assert.Contains(t, err.Error(), "DB_NAME")
		assert.NotContains(t, err.Error(), "DB_HOST")
	})
}

func TestConfig_DSN(t *testing.T) {
	c := cmd.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "eats",
		DBPassword: "secret",
		DBName:     "eats",
	}.WithDefaults()

	assert.Equal(t, "host=db port=5432 user=eats password=secret dbname=eats sslmode=disable", c.DSN())
}
